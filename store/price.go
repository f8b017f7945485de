package store

import (
	"database/sql"
	"errors"
)

// UpdatePrice sets the original and sale price of a product (admin operation).
// Passing sale with Valid=false clears the sale price.
func (s *PostgresStore) UpdatePrice(id int64, price int64, sale sql.NullInt64) error {
	if price < 0 || (sale.Valid && sale.Int64 < 0) {
		return errors.New("price cannot be negative")
	}
	res, err := s.DB.Exec(`UPDATE products SET price=$1, sale_price=$2 WHERE id=$3`, price, sale, id)
	if err != nil {
		return err
	}
	ra, _ := res.RowsAffected()
	if ra == 0 {
		return sql.ErrNoRows
	}
	return nil
}
