package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	require.Equal(t, "09:30", ts.String())

	// Нормализация незаполненных нулей
	ts, err = NewTimeStringFromString("9:05")
	require.NoError(t, err)
	require.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromString("25:00")
	require.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9am")
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Validate(t *testing.T) {
	require.NoError(t, TimeString("09:00").Validate())
	require.NoError(t, TimeString("23:59").Validate())

	// Только каноническая форма с ведущим нулём: слоты сравниваются как строки
	require.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeString)
	require.ErrorIs(t, TimeString("25:00").Validate(), ErrInvalidTimeString)
	require.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	require.Equal(t, TimeString("09:30"), next)

	next, err = ts.AddMinutes(60)
	require.NoError(t, err)
	require.Equal(t, TimeString("10:00"), next)

	// Переход через полночь
	late := TimeString("23:30")
	next, err = late.AddMinutes(60)
	require.NoError(t, err)
	require.Equal(t, TimeString("00:30"), next)

	_, err = TimeString("bad").AddMinutes(10)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("10:00"))
	require.False(t, TimeString("10:00").IsBefore("09:00"))
	require.False(t, TimeString("09:00").IsBefore("09:00"))

	require.True(t, TimeString("10:00").IsAfter("09:59"))
	require.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	require.Equal(t, TimeString("14:30"), ts)

	// TIME колонки приходят как "HH:MM:SS"
	require.NoError(t, ts.Scan("08:15:00"))
	require.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan([]byte("12:00")))
	require.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 16, 45, 0, 0, time.UTC)))
	require.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	require.True(t, ts.IsZero())

	require.Error(t, ts.Scan(123))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	require.Equal(t, "09:00", v)

	_, err = TimeString("whenever").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
