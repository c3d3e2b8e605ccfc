package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"userhub/internal/models"
	"userhub/internal/repository"
	"userhub/internal/utils"
)

// Мок-репозиторий (заглушка)
type mockUserRepo struct {
	users    map[string]*models.User // по email
	nextID   int
	lastUser *models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrEmailTaken
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.Email] = &cp
	m.lastUser = &cp
	return nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID int, passwordHash string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func newTestSessions() *SessionService {
	return NewSessionService(repository.NewSessionRepository(), time.Hour)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, newTestSessions())

	user, err := service.Register(context.Background(), "Ann", "ann@x.com", "Ab1@2345")
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.PasswordHash == "Ab1@2345" {
		t.Fatal("в хранилище попал открытый пароль")
	}
	if !utils.CheckPasswordHash("Ab1@2345", repo.lastUser.PasswordHash) {
		t.Fatal("сохранённый хеш не проверяется исходным паролем")
	}
	if user.ID == 0 {
		t.Fatal("пользователю не присвоен ID")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, newTestSessions())

	if _, err := service.Register(context.Background(), "Ann", "ann@x.com", "Ab1@2345"); err != nil {
		t.Fatalf("первая регистрация должна пройти: %v", err)
	}
	firstHash := repo.users["ann@x.com"].PasswordHash

	_, err := service.Register(context.Background(), "Ann2", "ann@x.com", "Xy9!zzzz")
	if !errors.Is(err, repository.ErrEmailTaken) {
		t.Fatalf("ожидался ErrEmailTaken, получено %v", err)
	}

	// Данные первой учётной записи не тронуты
	if repo.users["ann@x.com"].Name != "Ann" || repo.users["ann@x.com"].PasswordHash != firstHash {
		t.Fatal("повторная регистрация изменила существующую учётную запись")
	}
}

func TestRegister_PolicyRejected(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, newTestSessions())

	cases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"Ann", "ann@x.com", "short", ErrInvalidPassword},
		{"Ann", "ann@x.com", "NoSpecial123", ErrInvalidPassword},
		{"Ann", "not-an-email", "Ab1@2345", ErrInvalidEmail},
		{"слишком длинное имя пользователя для политики", "ann@x.com", "Ab1@2345", ErrInvalidName},
	}
	for _, tc := range cases {
		_, err := service.Register(context.Background(), tc.name, tc.email, tc.password)
		if !errors.Is(err, tc.want) {
			t.Errorf("Register(%q, %q, %q): ожидалось %v, получено %v", tc.name, tc.email, tc.password, tc.want, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatal("отклонённые регистрации не должны создавать записей")
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	sessions := newTestSessions()
	service := NewAuthService(repo, sessions)

	if _, err := service.Register(context.Background(), "Ann", "ann@x.com", "Ab1@2345"); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	user, sessionID, err := service.Login(context.Background(), "ann@x.com", "Ab1@2345")
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if sessionID == "" {
		t.Fatal("не получен идентификатор сессии")
	}
	if user.Name != "Ann" {
		t.Fatalf("вернулся не тот пользователь: %+v", user)
	}

	// Сессия зафиксирована до возврата — её сразу можно загрузить
	s, err := sessions.Load(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("сессия не читается после Login: %v", err)
	}
	if s.UserEmail != "ann@x.com" || s.UserName != "Ann" {
		t.Fatalf("в сессии чужие данные: %+v", s)
	}
}

func TestLogin_GenericError(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, newTestSessions())

	if _, err := service.Register(context.Background(), "Ann", "ann@x.com", "Ab1@2345"); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	_, _, errWrongPass := service.Login(context.Background(), "ann@x.com", "wrong@123")
	_, _, errNoUser := service.Login(context.Background(), "ghost@x.com", "Ab1@2345")

	if !errors.Is(errWrongPass, ErrInvalidCredentials) || !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("оба отказа должны быть ErrInvalidCredentials: %v / %v", errWrongPass, errNoUser)
	}
	// Сообщения совпадают: по тексту нельзя понять, что именно не так
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("тексты ошибок различаются: %q vs %q", errWrongPass.Error(), errNoUser.Error())
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	repo := newMockUserRepo()
	sessions := newTestSessions()
	service := NewAuthService(repo, sessions)

	if _, err := service.Register(context.Background(), "Ann", "ann@x.com", "Ab1@2345"); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	_, sessionID, err := service.Login(context.Background(), "ann@x.com", "Ab1@2345")
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	if err := service.Logout(context.Background(), sessionID); err != nil {
		t.Fatalf("ошибка логаута: %v", err)
	}

	if _, err := sessions.Load(context.Background(), sessionID); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Fatalf("после логаута сессия должна быть недоступна, получено %v", err)
	}
}
