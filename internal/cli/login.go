package cli

import (
	"context"
	"fmt"
)

// Login authenticates by email or mobile number and starts a session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter email or mobile number:")
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password:")
	if err != nil {
		return err
	}

	user, err := a.users.Authenticate(ctx, identifier, string(password))
	if err != nil {
		a.log.Debug(ctx, "login failed", "error", err)
		fmt.Println(userMessage(err))
		return err
	}

	if err := a.session.Login(ctx, user.Email); err != nil {
		fmt.Println(userMessage(err))
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println(userMessage(err))
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
