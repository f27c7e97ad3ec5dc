package gateway

import (
	"context"
	"net/http"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const resourceUsers = "users"

// FindUsers queries users by exact field match. Login uses it with username and
// password; signup uses it for uniqueness checks.
func (c *Client) FindUsers(ctx context.Context, f ports.UserFilter) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, call{
		resource: resourceUsers,
		op:       "find users",
		fallback: "Failed to fetch users",
		method:   http.MethodGet,
		path:     "/users",
		query:    queryOf("username", f.Username, "password", f.Password, "email", f.Email),
	}, &users)
	return users, err
}

func (c *Client) GetUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var u domain.User
	err := c.do(ctx, call{
		resource: resourceUsers,
		op:       "get user",
		fallback: "Failed to fetch user",
		method:   http.MethodGet,
		path:     itemPath("users", id),
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	created := user
	err := c.do(ctx, call{
		resource: resourceUsers,
		op:       "register",
		fallback: "Registration failed",
		method:   http.MethodPost,
		path:     "/register",
		body:     user,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	created := user
	err := c.do(ctx, call{
		resource: resourceUsers,
		op:       "create user",
		fallback: "Failed to create user",
		method:   http.MethodPost,
		path:     "/admin/users",
		body:     user,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces the whole user record.
func (c *Client) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := requireID(user.ID); err != nil {
		return nil, err
	}
	updated := user
	err := c.do(ctx, call{
		resource: resourceUsers,
		op:       "update user",
		fallback: "Failed to update user",
		method:   http.MethodPut,
		path:     itemPath("users", user.ID),
		body:     user,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id domain.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, call{
		resource: resourceUsers,
		op:       "delete user",
		fallback: "Failed to delete user",
		method:   http.MethodDelete,
		path:     itemPath("admin/users", id),
	}, nil)
}

func (c *Client) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, call{
		resource: resourceUsers,
		op:       "list all users",
		fallback: "Failed to fetch all users",
		method:   http.MethodGet,
		path:     "/admin/users",
	}, &users)
	return users, err
}
