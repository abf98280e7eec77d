package main

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

// addUser updates or creates an admin user.User
func (cli *commandLine) addUser(email, first, last, pwd string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		usr = user.User{
			Email:  email,
			Market: core.DefaultMarket,
		}
	}
	if first != "" {
		usr.FirstName = core.CleanString(first)
	}
	if last != "" {
		usr.LastName = core.CleanString(last)
	}
	usr.Role = user.RoleAdmin
	usr.IsActive = true
	now := time.Now().UTC()
	if usr.CreatedAt.IsZero() {
		usr.CreatedAt = now
	}
	usr.UpdatedAt = now
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	if _, err := cli.usrRepo.UpdateOrCreateUser(ctx, usr); err != nil {
		return err
	}
	return nil
}
