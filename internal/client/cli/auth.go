package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quickchat/internal/client/models"
	"github.com/dmitrijs2005/quickchat/internal/client/services"
	"github.com/dmitrijs2005/quickchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email and password and creates an account.
//
// On success the user is signed in and chat mode starts in the last used
// session. On failure only the generic registration message is shown; the
// cause is logged. Required-field errors are shown as they are.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Register(ctx, username, email, string(password))
	if err != nil {
		a.log.Error(ctx, "registration failed", "username", username, "error", err)
		a.printError(services.FailureMessage(err, services.RegisterFailedMessage))
		return err
	}

	a.signIn(ctx, res)
	return nil
}

// Login prompts for an identifier (username or email) and a password.
// Failures are reported like in Register.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Login(ctx, identifier, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "identifier", identifier, "error", err)
		a.printError(services.FailureMessage(err, services.LoginFailedMessage))
		return err
	}

	a.signIn(ctx, res)
	return nil
}

func (a *App) signIn(ctx context.Context, res *models.AuthResult) {
	a.user.SignIn(ctx, res)
	a.log.Info(ctx, "signed in", "user", res.User.Username)
	a.println(fmt.Sprintf("Welcome, %s!", res.User.Username))
	a.enterChat(ctx)
}

// Logout closes the active chat connection, forgets the user and removes
// user and token from storage.
func (a *App) Logout(ctx context.Context) error {
	a.chat.Close(ctx)
	a.user.SignOut(ctx)
	a.sessions.ClearCurrentSession()

	a.log.Info(ctx, "signed out")
	a.println("Logged out.")
	return nil
}
