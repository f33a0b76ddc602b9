// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUIDCtxKey(t *testing.T) {
	if UIDCtxKey.String() != "uid" {
		t.Errorf("expected 'uid', got '%s'", UIDCtxKey.String())
	}
}

func TestGetUIDFromContext_Success(t *testing.T) {
	ctx := WithUID(context.Background(), "u1")

	uid, ok := GetUIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if uid != "u1" {
		t.Errorf("expected uid=u1, got %s", uid)
	}
}

func TestGetUIDFromContext_Missing(t *testing.T) {
	uid, ok := GetUIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if uid != "" {
		t.Errorf("expected empty uid, got %s", uid)
	}
}

func TestGetUIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UIDCtxKey, 42)

	if _, ok := GetUIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetUIDFromContext_Empty(t *testing.T) {
	ctx := WithUID(context.Background(), "")

	if _, ok := GetUIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty uid")
	}
}

func TestGetUIDFromContext_PlainStringKeyIsIgnored(t *testing.T) {
	//nolint:staticcheck // the collision is what is being tested
	ctx := context.WithValue(context.Background(), "uid", "u1")

	if _, ok := GetUIDFromContext(ctx); ok {
		t.Fatal("expected plain string key not to collide with UIDCtxKey")
	}
}
