package handler

import "github.com/eduplatform/education-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Users ---

// loginRequest accepts an OAuth2 password form (username/password) or a JSON
// body with email/password.
type loginRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email"    json:"email"`
	Password string `form:"password" json:"password"`
}

func (r loginRequest) identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type signupRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required"`
	Admin     bool   `json:"admin"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Password  *string `json:"password"   validate:"omitempty,min=1"`
	Admin     *bool   `json:"admin"`
}

func (r updateUserRequest) toUpdate() domain.UserUpdate {
	return domain.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Admin:     r.Admin,
	}
}

// userWithArticlesResponse is the detailed user view.
type userWithArticlesResponse struct {
	*domain.User
	Articles []*domain.Article `json:"articles"`
}

// --- Articles ---

type createArticleRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	SourceURL   string `json:"source_url"  validate:"required,url"`
}

type updateArticleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SourceURL   *string `json:"source_url" validate:"omitempty,url"`
}

func (r updateArticleRequest) toUpdate() domain.ArticleUpdate {
	return domain.ArticleUpdate{
		Title:       r.Title,
		Description: r.Description,
		SourceURL:   r.SourceURL,
	}
}

// --- Courses ---

type courseRequest struct {
	Title   string `json:"title"   validate:"required"`
	Lessons int    `json:"lessons" validate:"required,gt=0"`
	Hours   int    `json:"hours"   validate:"required,gt=0"`
}

type updateCourseRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=1"`
	Lessons *int    `json:"lessons" validate:"omitempty,gt=0"`
	Hours   *int    `json:"hours"   validate:"omitempty,gt=0"`
}

func (r updateCourseRequest) toUpdate() domain.CourseUpdate {
	return domain.CourseUpdate{
		Title:   r.Title,
		Lessons: r.Lessons,
		Hours:   r.Hours,
	}
}
