package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

// MultiInputGroups joins transaction inputs against the previous outputs
// they spend and returns, per transaction, the funding address IDs of every
// transaction with more than one joined row. The filter counts rows, not
// distinct addresses: a transaction funded twice by one address still forms
// a group.
func (r *Repository) MultiInputGroups(ctx context.Context, coin model.Coin, network model.Network) (groups []model.MultiInputGroup, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("multi_input_groups", coin, network, err, start)
	}()

	const query = `
SELECT
	tx_id,
	groupArray(address_id) AS address_ids
FROM (
	SELECT
		i.tx_id AS tx_id,
		o.address_id AS address_id
	FROM entity_transaction_inputs AS i
	INNER JOIN entity_transaction_outputs AS o
		ON i.prev_tx_id = o.tx_id AND i.prev_vout = o.output_index
	WHERE i.coin = ? AND i.network = ?
		AND o.coin = ? AND o.network = ?
	ORDER BY i.tx_id ASC, i.input_index ASC
)
GROUP BY tx_id
HAVING count(*) > 1
ORDER BY tx_id ASC
SETTINGS max_threads = 1`

	rows, err := r.conn.Query(ctx, query, coin, network, coin, network)
	if err != nil {
		return nil, fmt.Errorf("query multi-input groups: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			txID       uint64
			addressIDs []uint64
		)
		if err = rows.Scan(&txID, &addressIDs); err != nil {
			return nil, fmt.Errorf("scan multi-input group: %w", err)
		}

		group := model.MultiInputGroup{
			TxID:      model.TxID(txID),
			Addresses: make([]model.AddressID, len(addressIDs)),
		}
		for i, id := range addressIDs {
			group.Addresses[i] = model.AddressID(id)
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate multi-input groups: %w", err)
	}

	return groups, nil
}
