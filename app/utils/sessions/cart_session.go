package sessions

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/naiastudio/storefront/app/models"
)

const (
	SessionCartKey = "cart_session"
	cartItemsKey   = "items"
)

// Store wraps a signed cookie store holding the visitor's cart. Cart state
// lives entirely in the cookie; nothing is written server-side.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(sessionKey string) *Store {
	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	}
	return &Store{cookies: store}
}

// GetCartItems decodes the cart from the request's session cookie. A missing
// or undecodable cart reads as empty.
func (s *Store) GetCartItems(r *http.Request) []models.CartItem {
	session, err := s.cookies.Get(r, SessionCartKey)
	if err != nil {
		return nil
	}

	raw, ok := session.Values[cartItemsKey].(string)
	if !ok || raw == "" {
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// SaveCartItems writes the cart back into the session cookie.
func (s *Store) SaveCartItems(w http.ResponseWriter, r *http.Request, items []models.CartItem) error {
	session, err := s.cookies.Get(r, SessionCartKey)
	if err != nil {
		session, err = s.cookies.New(r, SessionCartKey)
		if err != nil {
			return err
		}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	session.Values[cartItemsKey] = string(raw)
	return session.Save(r, w)
}
