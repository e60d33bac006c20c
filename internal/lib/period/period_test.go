package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Daily))
	assert.True(t, IsValid(Weekly))
	assert.True(t, IsValid(Monthly))
	assert.False(t, IsValid("yearly"))
	assert.False(t, IsValid("Daily"))
	assert.False(t, IsValid(""))
}

func TestKey_Daily(t *testing.T) {
	assert.Equal(t, "2024-03-15", Key(Daily, date("2024-03-15")))
}

func TestKey_Weekly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		// 2024-01-01 — понедельник, обе даты в ISO-неделе 1.
		{name: "понедельник и вторник одной недели", in: "2024-01-01", want: "2024-W01"},
		{name: "вторник той же недели", in: "2024-01-02", want: "2024-W01"},
		{name: "следующий понедельник", in: "2024-01-08", want: "2024-W02"},
		// ISO-год отличается от календарного на границе года.
		{name: "конец декабря относится к первой неделе следующего ISO-года", in: "2019-12-30", want: "2020-W01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(Weekly, date(tt.in)))
		})
	}
}

func TestKey_Monthly(t *testing.T) {
	// Одинаковый месяц разных лет даёт разные корзины.
	assert.Equal(t, "2024-03", Key(Monthly, date("2024-03-15")))
	assert.Equal(t, "2025-03", Key(Monthly, date("2025-03-15")))
	assert.Equal(t, "2024-03", Key(Monthly, date("2024-03-01")))
}
