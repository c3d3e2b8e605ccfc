package utils

import "testing"

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Ab1@2345", true},
		{"Xy9!zzzz", true},
		{"@$!%*?&a", true},      // минимальная длина
		{"Abcdef@12345", true},  // максимальная длина
		{"Ab1@234", false},      // короче 8
		{"Abcdef@123456", false}, // длиннее 12
		{"Abcd1234", false},     // нет спецсимвола
		{"Ab1@23 5", false},     // пробел вне алфавита
		{"Ab1#2345", false},     // # не входит в разрешённые
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValidPassword(tc.password); got != tc.want {
			t.Errorf("IsValidPassword(%q) = %v, ожидалось %v", tc.password, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("ann@x.com") {
		t.Error("валидный email отклонён")
	}
	if IsValidEmail("not-an-email") {
		t.Error("строка без @ принята как email")
	}
}

func TestIsValidName(t *testing.T) {
	if !IsValidName("Ann") {
		t.Error("короткое имя отклонено")
	}
	if IsValidName("очень длинное имя пользователя больше лимита") {
		t.Error("имя длиннее 25 символов принято")
	}
}
