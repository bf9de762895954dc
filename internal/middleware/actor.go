package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Actor identity arrives from the gateway in trusted headers. The core never
// authenticates; it only needs to know who is acting and in which role.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

const (
	RoleReporter  = "reporter"
	RoleResponder = "responder"
)

type ctxKey int

const (
	actorIDKey ctxKey = iota
	actorRoleKey
)

// Actor rejects requests without a parseable identity and stores it on the
// request context for handlers.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderActorID)
		if raw == "" {
			http.Error(w, "missing "+HeaderActorID+" header", http.StatusUnauthorized)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, HeaderActorID+" must be a UUID", http.StatusUnauthorized)
			return
		}

		role := strings.ToLower(r.Header.Get(HeaderActorRole))
		switch role {
		case RoleReporter, RoleResponder:
		default:
			http.Error(w, HeaderActorRole+" must be reporter or responder", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), id, role)))
	})
}

// WithActor stamps an identity onto a context the same way Actor does.
func WithActor(ctx context.Context, id uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, id)
	return context.WithValue(ctx, actorRoleKey, role)
}

// ActorID returns the identity set by Actor. The zero UUID means the
// middleware did not run, which is a routing bug.
func ActorID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(actorIDKey).(uuid.UUID)
	return id
}

func ActorRole(ctx context.Context) string {
	role, _ := ctx.Value(actorRoleKey).(string)
	return role
}
