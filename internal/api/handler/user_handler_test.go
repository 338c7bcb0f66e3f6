package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fpdual/dual-admin/internal/api/handler"
	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

type stubNotifier struct {
	broadcasts []string
}

func (s *stubNotifier) Broadcast(resource string) {
	s.broadcasts = append(s.broadcasts, resource)
}

type stubUserService struct {
	listFn         func(ctx context.Context) ([]domain.User, error)
	createFn       func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn       func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	toggleActiveFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) CompanyTutors(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) ToggleActive(ctx context.Context, id int64) error {
	return s.toggleActiveFn(ctx, id)
}

const validUserBody = `{
	"username": "ctutor",
	"password": "secret",
	"role": "center_tutor",
	"email": "ctutor@example.com",
	"phone": "+34600111222",
	"full_name": "Carmen Tutora",
	"department": "Informática"
}`

func TestUserHandler_Create_BroadcastsChange(t *testing.T) {
	e := newTestEcho()
	notifier := &stubNotifier{}
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Username != "ctutor" || input.Role != domain.RoleCenterTutor {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 2, Username: input.Username, Role: input.Role}, nil
		},
	}
	e.POST("/api/users", handler.NewUserHandler(stub, notifier).Create)

	rec := postJSON(t, e, "/api/users", validUserBody)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(notifier.broadcasts) != 1 || notifier.broadcasts[0] != ports.ResourceUsers {
		t.Fatalf("expected a users broadcast, got %v", notifier.broadcasts)
	}
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	e := newTestEcho()
	notifier := &stubNotifier{}
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	e.POST("/api/users", handler.NewUserHandler(stub, notifier).Create)

	rec := postJSON(t, e, "/api/users",
		`{"username":"x","password":"secret","role":"superuser","email":"x@example.com","phone":"1","full_name":"X","department":"Y"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(notifier.broadcasts) != 0 {
		t.Fatalf("no broadcast expected, got %v", notifier.broadcasts)
	}
}

func TestUserHandler_Create_DuplicateUsername(t *testing.T) {
	e := newTestEcho()
	notifier := &stubNotifier{}
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	e.POST("/api/users", handler.NewUserHandler(stub, notifier).Create)

	rec := postJSON(t, e, "/api/users", validUserBody)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(notifier.broadcasts) != 0 {
		t.Fatalf("no broadcast expected, got %v", notifier.broadcasts)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{ID: 1, Username: "admin"}}, nil
		},
	}
	e.GET("/api/users", handler.NewUserHandler(stub, &stubNotifier{}).List)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_ToggleActive_UnknownUser(t *testing.T) {
	e := newTestEcho()
	notifier := &stubNotifier{}
	stub := &stubUserService{
		toggleActiveFn: func(ctx context.Context, id int64) error {
			return domain.ErrUserNotFound
		},
	}
	e.PATCH("/api/users/:id/toggle", handler.NewUserHandler(stub, notifier).ToggleActive)

	req := httptest.NewRequest(http.MethodPatch, "/api/users/99/toggle", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if len(notifier.broadcasts) != 0 {
		t.Fatalf("no broadcast expected, got %v", notifier.broadcasts)
	}
}
