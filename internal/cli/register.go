package cli

import (
	"context"
	"fmt"
)

// Register walks the sign-up prompts and creates the account. The password
// is asked for twice; a mismatch aborts before anything touches the store.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name:")
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email:")
	if err != nil {
		return err
	}
	mobile, err := GetSimpleText(a.reader, "Enter mobile number:")
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password:")
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password:")
	if err != nil {
		return err
	}
	if string(password) != string(confirm) {
		fmt.Println("Passwords do not match")
		return nil
	}

	if _, err := a.users.Register(ctx, name, email, mobile, string(password)); err != nil {
		a.log.Debug(ctx, "registration failed", "error", err)
		fmt.Println(userMessage(err))
		return err
	}

	fmt.Println("Sign up successful!")
	return nil
}
