package proto

import "google.golang.org/protobuf/types/known/timestamppb"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status,omitempty"`
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type RegisterRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type LoginAnonymouslyRequest struct{}

// AuthResponse is returned by Register, Login and LoginAnonymously.
type AuthResponse struct {
	UserId       string `json:"user_id,omitempty"`
	Email        string `json:"email,omitempty"`
	IsAnonymous  bool   `json:"is_anonymous,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (x *AuthResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AuthResponse) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *AuthResponse) GetIsAnonymous() bool {
	if x != nil {
		return x.IsAnonymous
	}
	return false
}

func (x *AuthResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *AuthResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (x *RefreshTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *RefreshTokenResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type LogoutResponse struct{}

// ApplicationFields are the user-editable fields of an application.
type ApplicationFields struct {
	CompanyName string                 `json:"company_name,omitempty"`
	Url         string                 `json:"url,omitempty"`
	Status      string                 `json:"status,omitempty"`
	DateApplied *timestamppb.Timestamp `json:"date_applied,omitempty"`
}

func (x *ApplicationFields) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *ApplicationFields) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ApplicationFields) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ApplicationFields) GetDateApplied() *timestamppb.Timestamp {
	if x != nil {
		return x.DateApplied
	}
	return nil
}

type Application struct {
	Id          string                 `json:"id,omitempty"`
	CompanyName string                 `json:"company_name,omitempty"`
	Url         string                 `json:"url,omitempty"`
	Status      string                 `json:"status,omitempty"`
	DateApplied *timestamppb.Timestamp `json:"date_applied,omitempty"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at,omitempty"`
}

func (x *Application) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Application) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Application) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetDateApplied() *timestamppb.Timestamp {
	if x != nil {
		return x.DateApplied
	}
	return nil
}

func (x *Application) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListApplicationsRequest struct{}

type ListApplicationsResponse struct {
	Applications []*Application `json:"applications,omitempty"`
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type CreateApplicationRequest struct {
	Fields *ApplicationFields `json:"fields,omitempty"`
}

func (x *CreateApplicationRequest) GetFields() *ApplicationFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

type CreateApplicationResponse struct {
	Id string `json:"id,omitempty"`
}

func (x *CreateApplicationResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetApplicationRequest struct {
	Id string `json:"id,omitempty"`
}

type GetApplicationResponse struct {
	Application *Application `json:"application,omitempty"`
}

func (x *GetApplicationResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

type UpdateApplicationRequest struct {
	Id     string             `json:"id,omitempty"`
	Fields *ApplicationFields `json:"fields,omitempty"`
}

func (x *UpdateApplicationRequest) GetFields() *ApplicationFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

type UpdateApplicationResponse struct{}

type DeleteApplicationRequest struct {
	Id string `json:"id,omitempty"`
}

type DeleteApplicationResponse struct{}

type ExportApplicationsRequest struct{}

// ExportApplicationsResponse points at a JSON snapshot of the caller's
// applications in object storage.
type ExportApplicationsResponse struct {
	Url       string                 `json:"url,omitempty"`
	Key       string                 `json:"key,omitempty"`
	Count     int32                  `json:"count,omitempty"`
	ExpiresAt *timestamppb.Timestamp `json:"expires_at,omitempty"`
}

func (x *ExportApplicationsResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ExportApplicationsResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *ExportApplicationsResponse) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}
