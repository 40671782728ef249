package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

// AddressHashesByIDs resolves address surrogate IDs back to address hashes
// from the address-mapping table.
func (r *Repository) AddressHashesByIDs(ctx context.Context, coin model.Coin, network model.Network, ids []model.AddressID) (result map[model.AddressID]string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_hashes_by_ids", coin, network, err, start)
	}()

	result = make(map[model.AddressID]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]uint64, len(ids))
	for i, id := range ids {
		raw[i] = uint64(id)
	}

	const query = `
SELECT
	address_id,
	anyLast(address_hash) AS address_hash
FROM entity_address_ids
WHERE coin = ? AND network = ? AND address_id IN ?
GROUP BY address_id
SETTINGS max_threads = 1`

	rows, err := r.conn.Query(ctx, query, coin, network, raw)
	if err != nil {
		return nil, fmt.Errorf("query address hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			id   uint64
			hash string
		)
		if err = rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scan address hash: %w", err)
		}
		result[model.AddressID(id)] = hash
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address hashes: %w", err)
	}

	return result, nil
}
