package session

// Session is the validated shop credential attached to every operator call and
// carried by the per-shop engine actor for catalog access.
type Session struct {
	Shop        string
	AccessToken string
}

func (s Session) IsZero() bool {
	return s.Shop == ""
}
