package session

import (
	"errors"
	"fmt"

	"daybook/local-app/src/pkg/model"
)

// initAuthCommandHandlers initializes auth command handlers
func initAuthCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"register": handleAuthRegister,
		"login":    handleAuthLogin,
		"logout":   handleAuthLogout,
		"profile":  handleAuthProfile,
		"whoami":   handleAuthWhoami,
	}
}

// handleAuthRegister handles the auth register command
func handleAuthRegister(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 3 {
		return nil, errors.New("usage: auth register <username> <email> <password>")
	}

	result := sm.Register(model.RegisterInput{
		Username: cmd.Args[0],
		Email:    cmd.Args[1],
		Password: cmd.Args[2],
	})
	return result.Message, resultErr(result)
}

// handleAuthLogin handles the auth login command
func handleAuthLogin(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 2 {
		return nil, errors.New("usage: auth login <username|email> <password>")
	}

	result := sm.Login(cmd.Args[0], cmd.Args[1])
	return result.Message, resultErr(result)
}

// handleAuthLogout handles the auth logout command
func handleAuthLogout(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if !sm.IsAuthenticated() {
		return nil, errors.New(msgNotLoggedIn)
	}
	if err := sm.Logout(); err != nil {
		return nil, fmt.Errorf("failed to log out: %w", err)
	}
	return "logged out", nil
}

// handleAuthProfile handles the auth profile command; fields arrive as
// username:<value> and email:<value> extras.
func handleAuthProfile(sm *SessionManager, cmd model.Command) (interface{}, error) {
	_, extras := parseExtras(cmd.Args)
	if len(extras) == 0 {
		return nil, errors.New("usage: auth profile [username:<name>] [email:<address>]")
	}

	patch := model.ProfilePatch{}
	if v, ok := extras["username"]; ok {
		patch.Username = &v
	}
	if v, ok := extras["email"]; ok {
		patch.Email = &v
	}

	result := sm.UpdateProfile(patch)
	return result.Message, resultErr(result)
}

// handleAuthWhoami handles the auth whoami command
func handleAuthWhoami(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if !sm.IsAuthenticated() {
		return "not logged in", nil
	}
	user := sm.Current().User
	return fmt.Sprintf("%s <%s> (since %s)", user.Username, user.Email, user.CreatedAt.Format("2006-01-02")), nil
}

// resultErr converts a failed Result into an error for the CLI; successful
// results pass through as nil.
func resultErr(result model.Result) error {
	if result.Success {
		return nil
	}
	return errors.New(result.Message)
}
