package check

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFuncCheck_Name(t *testing.T) {
	c := NewFuncCheck(FuncCheckConfig{
		Name: "database",
		Fn:   func(ctx context.Context) (bool, error) { return true, nil },
	})

	if c.Name() != "database" {
		t.Errorf("Name() = %v, want 'database'", c.Name())
	}
}

func TestFuncCheck_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		fn   EvaluateFunc
		want bool
	}{
		{
			name: "true result",
			fn:   func(ctx context.Context) (bool, error) { return true, nil },
			want: true,
		},
		{
			name: "false result",
			fn:   func(ctx context.Context) (bool, error) { return false, nil },
			want: false,
		},
		{
			name: "error converts to false",
			fn:   func(ctx context.Context) (bool, error) { return true, errors.New("boom") },
			want: false,
		},
		{
			name: "panic converts to false",
			fn:   func(ctx context.Context) (bool, error) { panic("boom") },
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFuncCheck(FuncCheckConfig{Name: "test", Fn: tt.fn})

			if got := c.Evaluate(context.Background()); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFuncCheck_NilFn(t *testing.T) {
	c := NewFuncCheck(FuncCheckConfig{Name: "empty"})

	if c.Evaluate(context.Background()) {
		t.Error("Evaluate() = true, want false for nil function")
	}
}

func TestFuncCheck_Timeout(t *testing.T) {
	c := NewFuncCheck(FuncCheckConfig{
		Name:    "slow",
		Timeout: 20 * time.Millisecond,
		Fn: func(ctx context.Context) (bool, error) {
			time.Sleep(200 * time.Millisecond)
			return true, nil
		},
	})

	if c.Evaluate(context.Background()) {
		t.Error("Evaluate() = true, want false on timeout")
	}
}

func TestFuncCheck_WithinTimeout(t *testing.T) {
	c := NewFuncCheck(FuncCheckConfig{
		Name:    "fast",
		Timeout: time.Second,
		Fn:      func(ctx context.Context) (bool, error) { return true, nil },
	})

	if !c.Evaluate(context.Background()) {
		t.Error("Evaluate() = false, want true inside timeout")
	}
}

func TestFuncCheck_ContextPropagated(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	c := NewFuncCheck(FuncCheckConfig{
		Name: "ctx",
		Fn: func(ctx context.Context) (bool, error) {
			return ctx.Value(key{}) == "v", nil
		},
	})

	if !c.Evaluate(ctx) {
		t.Error("Evaluate() = false, want true; context value not propagated")
	}
}
