package handler

import "time"

// authEnvelope is the response wrapper used by every auth endpoint. The auth
// service historically uses "status" as its boolean key while the other two
// services use "success"; existing callers depend on both shapes, so the
// divergence is kept per service boundary.
type authEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=2,max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// adminView is the public projection of an admin record. The password hash
// never appears here.
type adminView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type authData struct {
	Admin adminView `json:"admin"`
	Token string    `json:"token"`
}

type adminOnlyData struct {
	Message string     `json:"message"`
	User    claimsView `json:"user"`
}

type claimsView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authHealthData struct {
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
}
