package sqlite

import (
	"context"

	"github.com/auswiki/auswiki/internal/wiki/domain"
	"github.com/auswiki/auswiki/internal/wiki/store"
)

type ausRepo struct {
	q querier
}

const listAUs = `
SELECT a.id, a.name, a.author, a.description, a.link, a.created_by, a.created_at, u.username
FROM aus a
JOIN users u ON u.id = a.created_by
ORDER BY a.created_at DESC, a.id DESC
`

func (r *ausRepo) ListAUs(ctx context.Context) ([]domain.AUWithCreator, error) {
	rows, err := r.q.QueryContext(ctx, listAUs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AUWithCreator
	for rows.Next() {
		var a domain.AUWithCreator
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Author, &a.Desc, &a.Link,
			&a.CreatedBy, &a.CreatedAt, &a.CreatorUsername,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

const getAUByID = `
SELECT id, name, author, description, link, created_by, created_at
FROM aus
WHERE id = ?
`

func (r *ausRepo) GetAUByID(ctx context.Context, id string) (domain.AU, error) {
	var a domain.AU
	err := r.q.QueryRowContext(ctx, getAUByID, id).
		Scan(&a.ID, &a.Name, &a.Author, &a.Desc, &a.Link, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		return domain.AU{}, mapNotFound(err)
	}
	return a, nil
}

const createAU = `
INSERT INTO aus (id, name, author, description, link, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

func (r *ausRepo) CreateAU(ctx context.Context, au domain.AU) error {
	_, err := r.q.ExecContext(ctx, createAU,
		au.ID, au.Name, au.Author, au.Desc, au.Link, au.CreatedBy, au.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const deleteAU = `
DELETE FROM aus
WHERE id = ?
`

func (r *ausRepo) DeleteAU(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, deleteAU, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
