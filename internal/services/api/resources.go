package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListParams mirrors the query parameters the admin API accepts on
// collection endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

type Project struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug,omitempty"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Thumbnail        string   `json:"thumbnail"`
	Images           []string `json:"images,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	Category         string   `json:"category"`
	ClientName       string   `json:"clientName,omitempty"`
	ProjectURL       string   `json:"projectUrl,omitempty"`
	GithubURL        string   `json:"githubUrl,omitempty"`
	CompletionDate   string   `json:"completionDate,omitempty"`
	IsFeatured       bool     `json:"isFeatured,omitempty"`
	IsPublished      bool     `json:"isPublished,omitempty"`
	Order            int      `json:"order,omitempty"`
}

type Service struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Icon             string   `json:"icon"`
	Features         []string `json:"features,omitempty"`
	IsPublished      bool     `json:"isPublished,omitempty"`
	Order            int      `json:"order,omitempty"`
}

type Technology struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Logo             string `json:"logo"`
	Category         string `json:"category"`
	ProficiencyLevel string `json:"proficiencyLevel,omitempty"`
	IsPublished      bool   `json:"isPublished,omitempty"`
	Order            int    `json:"order,omitempty"`
}

type TeamMember struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Bio         string            `json:"bio,omitempty"`
	Photo       string            `json:"photo,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
	IsPublished bool              `json:"isPublished,omitempty"`
	Order       int               `json:"order,omitempty"`
}

type Testimonial struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
	Avatar      string `json:"avatar,omitempty"`
	AvatarColor string `json:"avatarColor,omitempty"`
	IsActive    bool   `json:"isActive,omitempty"`
	Order       int    `json:"order,omitempty"`
}

type ContactMessage struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type AdminUser struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	LastLogin string `json:"lastLogin,omitempty"`
}

type DashboardStats struct {
	Projects       int `json:"projects"`
	Services       int `json:"services"`
	Technologies   int `json:"technologies"`
	TeamMembers    int `json:"teamMembers"`
	Testimonials   int `json:"testimonials"`
	UnreadMessages int `json:"unreadMessages"`
}

type ActivityLog struct {
	ID        string `json:"_id"`
	UserName  string `json:"userName"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	CreatedAt string `json:"createdAt"`
}

func listResource[T any](ctx context.Context, c *Client, path string, params ListParams) ([]T, *Pagination, error) {
	env, err := c.Get(ctx, path, params.values())
	if err != nil {
		return nil, nil, err
	}
	var items []T
	if err := DecodeData(env, &items); err != nil {
		return nil, nil, err
	}
	return items, env.Pagination, nil
}

func createResource[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var item T
	env, err := c.Post(ctx, path, payload)
	if err != nil {
		return item, err
	}
	if err := DecodeData(env, &item); err != nil {
		return item, err
	}
	return item, nil
}

func updateResource[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var item T
	env, err := c.Put(ctx, path, payload)
	if err != nil {
		return item, err
	}
	if err := DecodeData(env, &item); err != nil {
		return item, err
	}
	return item, nil
}

type ProjectsAPI struct{ c *Client }

func (c *Client) Projects() *ProjectsAPI { return &ProjectsAPI{c: c} }

func (a *ProjectsAPI) List(ctx context.Context, params ListParams) ([]Project, *Pagination, error) {
	return listResource[Project](ctx, a.c, "/admin/projects", params)
}

func (a *ProjectsAPI) Create(ctx context.Context, payload Project) (Project, error) {
	return createResource[Project](ctx, a.c, "/admin/projects", payload)
}

func (a *ProjectsAPI) Update(ctx context.Context, id string, payload Project) (Project, error) {
	return updateResource[Project](ctx, a.c, "/admin/projects/"+id, payload)
}

func (a *ProjectsAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/admin/projects/"+id)
	return err
}

type ServicesAPI struct{ c *Client }

func (c *Client) Services() *ServicesAPI { return &ServicesAPI{c: c} }

func (a *ServicesAPI) List(ctx context.Context, params ListParams) ([]Service, *Pagination, error) {
	return listResource[Service](ctx, a.c, "/admin/services", params)
}

func (a *ServicesAPI) Create(ctx context.Context, payload Service) (Service, error) {
	return createResource[Service](ctx, a.c, "/admin/services", payload)
}

func (a *ServicesAPI) Update(ctx context.Context, id string, payload Service) (Service, error) {
	return updateResource[Service](ctx, a.c, "/admin/services/"+id, payload)
}

func (a *ServicesAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/admin/services/"+id)
	return err
}

type TechnologiesAPI struct{ c *Client }

func (c *Client) Technologies() *TechnologiesAPI { return &TechnologiesAPI{c: c} }

func (a *TechnologiesAPI) List(ctx context.Context, params ListParams) ([]Technology, *Pagination, error) {
	return listResource[Technology](ctx, a.c, "/admin/technologies", params)
}

func (a *TechnologiesAPI) Create(ctx context.Context, payload Technology) (Technology, error) {
	return createResource[Technology](ctx, a.c, "/admin/technologies", payload)
}

func (a *TechnologiesAPI) Update(ctx context.Context, id string, payload Technology) (Technology, error) {
	return updateResource[Technology](ctx, a.c, "/admin/technologies/"+id, payload)
}

func (a *TechnologiesAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/admin/technologies/"+id)
	return err
}

type TeamAPI struct{ c *Client }

func (c *Client) Team() *TeamAPI { return &TeamAPI{c: c} }

func (a *TeamAPI) List(ctx context.Context, params ListParams) ([]TeamMember, *Pagination, error) {
	return listResource[TeamMember](ctx, a.c, "/admin/team", params)
}

func (a *TeamAPI) Create(ctx context.Context, payload TeamMember) (TeamMember, error) {
	return createResource[TeamMember](ctx, a.c, "/admin/team", payload)
}

func (a *TeamAPI) Update(ctx context.Context, id string, payload TeamMember) (TeamMember, error) {
	return updateResource[TeamMember](ctx, a.c, "/admin/team/"+id, payload)
}

func (a *TeamAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/admin/team/"+id)
	return err
}

type TestimonialsAPI struct{ c *Client }

func (c *Client) Testimonials() *TestimonialsAPI { return &TestimonialsAPI{c: c} }

func (a *TestimonialsAPI) List(ctx context.Context, params ListParams) ([]Testimonial, *Pagination, error) {
	return listResource[Testimonial](ctx, a.c, "/testimonials/all", params)
}

func (a *TestimonialsAPI) Create(ctx context.Context, payload Testimonial) (Testimonial, error) {
	return createResource[Testimonial](ctx, a.c, "/testimonials", payload)
}

func (a *TestimonialsAPI) Update(ctx context.Context, id string, payload Testimonial) (Testimonial, error) {
	return updateResource[Testimonial](ctx, a.c, "/testimonials/"+id, payload)
}

func (a *TestimonialsAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/testimonials/"+id)
	return err
}

type MessagesAPI struct{ c *Client }

func (c *Client) Messages() *MessagesAPI { return &MessagesAPI{c: c} }

func (a *MessagesAPI) List(ctx context.Context, params ListParams) ([]ContactMessage, *Pagination, error) {
	return listResource[ContactMessage](ctx, a.c, "/admin/messages", params)
}

func (a *MessagesAPI) Get(ctx context.Context, id string) (ContactMessage, error) {
	var msg ContactMessage
	env, err := a.c.Get(ctx, "/admin/messages/"+id, nil)
	if err != nil {
		return msg, err
	}
	if err := DecodeData(env, &msg); err != nil {
		return msg, err
	}
	return msg, nil
}

func (a *MessagesAPI) ToggleRead(ctx context.Context, id string) error {
	_, err := a.c.Patch(ctx, "/admin/messages/"+id+"/read", nil)
	return err
}

func (a *MessagesAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/admin/messages/"+id)
	return err
}

// UsersAPI is the super_admin-only surface.
type UsersAPI struct{ c *Client }

func (c *Client) Users() *UsersAPI { return &UsersAPI{c: c} }

func (a *UsersAPI) List(ctx context.Context, params ListParams) ([]AdminUser, *Pagination, error) {
	return listResource[AdminUser](ctx, a.c, "/admin/users", params)
}

func (a *UsersAPI) Create(ctx context.Context, payload AdminUser) (AdminUser, error) {
	return createResource[AdminUser](ctx, a.c, "/admin/users", payload)
}

func (a *UsersAPI) Update(ctx context.Context, id string, payload AdminUser) (AdminUser, error) {
	return updateResource[AdminUser](ctx, a.c, "/admin/users/"+id, payload)
}

func (a *UsersAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.Delete(ctx, "/admin/users/"+id)
	return err
}

type DashboardAPI struct{ c *Client }

func (c *Client) Dashboard() *DashboardAPI { return &DashboardAPI{c: c} }

func (a *DashboardAPI) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	env, err := a.c.Get(ctx, "/admin/stats", nil)
	if err != nil {
		return stats, err
	}
	if err := DecodeData(env, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (a *DashboardAPI) ActivityLogs(ctx context.Context, params ListParams) ([]ActivityLog, *Pagination, error) {
	return listResource[ActivityLog](ctx, a.c, "/admin/activity-logs", params)
}
