package execctx

import (
	"errors"
	"testing"
)

func TestNewContextDefaults(t *testing.T) {
	ctx := New()
	if ctx.GetCount() != 1 {
		t.Errorf("GetCount() = %d, want 1", ctx.GetCount())
	}
	if ctx.Mode() != nil || ctx.ModeName() != "" {
		t.Error("context without mode manager should report no mode")
	}
}

func TestWithCountIgnoresNonPositive(t *testing.T) {
	ctx := New().WithCount(3).WithCount(0)
	if ctx.GetCount() != 3 {
		t.Errorf("GetCount() = %d, want 3", ctx.GetCount())
	}
	ctx.Count = -1
	if ctx.GetCount() != 1 {
		t.Errorf("GetCount() = %d, want 1", ctx.GetCount())
	}
}

func TestValidate(t *testing.T) {
	ctx := New()
	if err := ctx.Validate(); !errors.Is(err, ErrBufferMissing) {
		t.Errorf("Validate() = %v, want ErrBufferMissing", err)
	}
	if err := ctx.ValidateForMode(); !errors.Is(err, ErrBufferMissing) {
		t.Errorf("ValidateForMode() = %v, want ErrBufferMissing", err)
	}
}

func TestData(t *testing.T) {
	ctx := &ExecutionContext{}
	ctx.SetData("k", 1)

	v, ok := ctx.GetData("k")
	if !ok || v != 1 {
		t.Errorf("GetData(k) = %v, %v", v, ok)
	}
	if _, ok := ctx.GetData("missing"); ok {
		t.Error("GetData(missing) should fail")
	}
}
