package form_test

import (
	"errors"
	"testing"

	"go-course-portal/internal/form"
	"go-course-portal/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	Login   string `json:"login" validate:"min=2"`
	Secret  string `json:"secret" validate:"min=6"`
	Confirm string `json:"confirm" validate:"eqfield=Secret"`
}

func (a *account) Field(name string) (*string, bool) {
	switch name {
	case "login":
		return &a.Login, true
	case "secret":
		return &a.Secret, true
	case "confirm":
		return &a.Confirm, true
	}
	return nil, false
}

type fakeSubmitter struct {
	SubmitFn func(values account) error
	calls    []account
}

func (f *fakeSubmitter) Submit(values account) error {
	f.calls = append(f.calls, values)
	if f.SubmitFn == nil {
		return nil
	}
	return f.SubmitFn(values)
}

func newController(sub *fakeSubmitter, mode form.Mode) *form.Controller[account, *account] {
	return form.New[account](validation.NewSchema[account](nil), sub, mode)
}

func fill(t *testing.T, c *form.Controller[account, *account], login, secret, confirm string) {
	t.Helper()
	require.NoError(t, c.SetField("login", login))
	require.NoError(t, c.SetField("secret", secret))
	require.NoError(t, c.SetField("confirm", confirm))
}

func TestController_SetField(t *testing.T) {
	t.Run("stores_value_without_validating", func(t *testing.T) {
		c := newController(&fakeSubmitter{}, form.ValidateOnSubmit)

		require.NoError(t, c.SetField("login", "x"))

		assert.Equal(t, "x", c.Values().Login)
		assert.Empty(t, c.Errors())
	})

	t.Run("unknown_field", func(t *testing.T) {
		c := newController(&fakeSubmitter{}, form.ValidateOnSubmit)

		err := c.SetField("nickname", "x")
		assert.ErrorIs(t, err, form.ErrUnknownField)
	})

	t.Run("validate_on_change_refreshes_field", func(t *testing.T) {
		c := newController(&fakeSubmitter{}, form.ValidateOnChange)

		require.NoError(t, c.SetField("login", "x"))
		assert.True(t, c.Errors().Has("login"))
		assert.False(t, c.Errors().Has("secret"), "untouched fields stay quiet")

		require.NoError(t, c.SetField("login", "xy"))
		assert.False(t, c.Errors().Has("login"))
	})

	t.Run("validate_on_change_clears_dependent_field", func(t *testing.T) {
		c := newController(&fakeSubmitter{}, form.ValidateOnChange)

		require.NoError(t, c.SetField("confirm", "abc"))
		assert.True(t, c.Errors().Has("confirm"))

		require.NoError(t, c.SetField("secret", "abc"))
		assert.False(t, c.Errors().Has("confirm"), "matching secret clears the confirm error")
		assert.True(t, c.Errors().Has("secret"))
		assert.False(t, c.Errors().Has("login"), "untouched fields stay quiet")
	})
}

func TestController_Submit(t *testing.T) {
	t.Run("invalid_input_records_errors", func(t *testing.T) {
		sub := &fakeSubmitter{}
		c := newController(sub, form.ValidateOnSubmit)
		fill(t, c, "x", "abc", "abd")

		res, err := c.Submit()

		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"confirm", "login", "secret"}, c.Errors().Fields())
		assert.Empty(t, sub.calls)
	})

	t.Run("valid_input_clears_errors_and_submits", func(t *testing.T) {
		sub := &fakeSubmitter{}
		c := newController(sub, form.ValidateOnSubmit)
		fill(t, c, "x", "secret", "secret")
		_, _ = c.Submit()
		require.True(t, c.Errors().Has("login"))

		require.NoError(t, c.SetField("login", "xy"))
		res, err := c.Submit()

		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, c.Errors())
		require.Len(t, sub.calls, 1)
		assert.Equal(t, account{Login: "xy", Secret: "secret", Confirm: "secret"}, sub.calls[0])
	})

	t.Run("submitted_values_are_a_snapshot", func(t *testing.T) {
		sub := &fakeSubmitter{}
		c := newController(sub, form.ValidateOnSubmit)
		fill(t, c, "xy", "secret", "secret")

		_, err := c.Submit()
		require.NoError(t, err)
		require.NoError(t, c.SetField("login", "changed"))

		assert.Equal(t, "xy", sub.calls[0].Login)
	})

	t.Run("submitter_error_is_returned", func(t *testing.T) {
		busy := errors.New("busy")
		sub := &fakeSubmitter{SubmitFn: func(account) error { return busy }}
		c := newController(sub, form.ValidateOnSubmit)
		fill(t, c, "xy", "secret", "secret")

		res, err := c.Submit()

		assert.ErrorIs(t, err, busy)
		assert.True(t, res.Valid)
		assert.Equal(t, "xy", c.Values().Login, "values are kept")
	})
}

func TestController_Reset(t *testing.T) {
	c := newController(&fakeSubmitter{}, form.ValidateOnChange)
	require.NoError(t, c.SetField("login", "x"))

	c.Reset()

	assert.Equal(t, account{}, c.Values())
	assert.Empty(t, c.Errors())
}

func TestParseMode(t *testing.T) {
	m, err := form.ParseMode("change")
	require.NoError(t, err)
	assert.Equal(t, form.ValidateOnChange, m)

	m, err = form.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, form.ValidateOnSubmit, m)
	assert.Equal(t, "submit", m.String())

	_, err = form.ParseMode("live")
	assert.Error(t, err)
}
