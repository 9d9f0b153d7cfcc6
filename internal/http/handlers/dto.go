package handlers

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResult struct {
	Token string `json:"token"`
}

// UpdateProfileRequest is a partial update; empty fields are left untouched.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type ExtractedTextResult struct {
	ExtractedText string `json:"extracted_text"`
}

type ErrorResult struct {
	Error string `json:"error"`
}

type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}
