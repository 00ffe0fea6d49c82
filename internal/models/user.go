package models

// User is the authenticated principal acting on a request.
type User struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
}

// CanManage reports whether u may modify a resource owned by ownerID.
func (u User) CanManage(ownerID string) bool {
	return u.IsAdmin || u.ID == ownerID
}
