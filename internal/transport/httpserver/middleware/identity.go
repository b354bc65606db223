package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"welfare-app-go/internal/domain/authn"
	"welfare-app-go/internal/domain/authz"
	"welfare-app-go/pkg/logger"
)

// ActorHeader names the caller on every authenticated request. The role is
// never taken from the request: it is resolved from the accounts table, so a
// client cannot claim a role it does not hold.
const ActorHeader = "X-Actor-Email"

type AccountResolver interface {
	Authenticate(ctx context.Context, email string) (*authn.Account, error)
}

type Identity struct {
	accounts AccountResolver
	log      logger.Logger
}

func NewIdentity(accounts AccountResolver, log logger.Logger) *Identity {
	return &Identity{accounts: accounts, log: log}
}

type contextKey int

const actorKey contextKey = iota

func (m *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(ActorHeader))
		if email == "" {
			writeMessage(w, http.StatusUnauthorized, "actor identity required")
			return
		}

		account, err := m.accounts.Authenticate(r.Context(), email)
		if err != nil {
			if errors.Is(err, authn.ErrAccountNotFound) {
				writeMessage(w, http.StatusUnauthorized, "unknown actor")
				return
			}
			m.log.InternalError("identity: account lookup failed", err, "email", email)
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}

		actor := authz.Actor{ID: account.ID, Email: account.Email, Role: account.Role}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func WithActor(ctx context.Context, actor authz.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (authz.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(authz.Actor)
	if !ok || actor.Email == "" {
		return authz.Actor{}, false
	}
	return actor, true
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
