package repo

import (
	"context"

	"gitgate/internal/services/gate/domain"
)

// UserByID implements domain.IdentityPort
func (r *queries) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	const sql = `
select id, username, blocked, admin
from users
where id = $1
`
	var u domain.User
	err := r.q.QueryRow(ctx, sql, id).Scan(&u.ID, &u.Username, &u.Blocked, &u.Admin)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// DeployKeyByID implements domain.IdentityPort
func (r *queries) DeployKeyByID(ctx context.Context, id int64) (*domain.DeployKey, error) {
	const sql = `
select id, title, can_push
from deploy_keys
where id = $1
`
	var k domain.DeployKey
	err := r.q.QueryRow(ctx, sql, id).Scan(&k.ID, &k.Title, &k.CanPush)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}
