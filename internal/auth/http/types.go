package http

// registerResponse is the body of a successful registration. Only the new
// account's id leaves the service; the hash never does.
type registerResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// accountProfile is the view of an account returned on login. It carries no
// password material and no token; the token travels in the Auth-Token
// response header as the single canonical channel.
type accountProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	IsOnline bool   `json:"isOnline"`
}

type loginResponse struct {
	Message string         `json:"message"`
	User    accountProfile `json:"user"`
}

type healthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *healthChecks `json:"checks,omitempty"`
}

type healthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
