package statement

import (
	"errors"
	"testing"

	"freight-backoffice/pkg/xerrors"
)

func TestRouterExactBeatsPrefix(t *testing.T) {
	known := map[Bucket]bool{BucketServiceRevenue: true, BucketOtherRevenue: true}
	r, err := NewRouter(known,
		map[string]Bucket{"4000": BucketServiceRevenue},
		[]PrefixRule{{Prefix: "4", Bucket: BucketOtherRevenue}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b, ok := r.Route("4000"); !ok || b != BucketServiceRevenue {
		t.Fatalf("exact match must win: %v %v", b, ok)
	}
	if b, ok := r.Route("4250"); !ok || b != BucketOtherRevenue {
		t.Fatalf("prefix should catch 4250: %v %v", b, ok)
	}
	if _, ok := r.Route("9999"); ok {
		t.Fatal("unrouted code must return false")
	}
}

func TestRouterPrefixOrder(t *testing.T) {
	known := map[Bucket]bool{BucketCash: true, BucketOtherAssets: true}
	r, err := NewRouter(known, nil, []PrefixRule{
		{Prefix: "10", Bucket: BucketCash},
		{Prefix: "1", Bucket: BucketOtherAssets},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b, _ := r.Route("1050"); b != BucketCash {
		t.Fatalf("earlier rule must win, got %v", b)
	}
	if b, _ := r.Route("1900"); b != BucketOtherAssets {
		t.Fatalf("fallthrough to later rule failed, got %v", b)
	}
}

func TestRouterRejectsUnknownBucket(t *testing.T) {
	known := map[Bucket]bool{BucketCash: true}

	_, err := NewRouter(known, map[string]Bucket{"1000": BucketPayable}, nil)
	if !errors.Is(err, xerrors.ErrUnknownBucket) {
		t.Fatalf("expected ErrUnknownBucket, got %v", err)
	}

	_, err = NewRouter(known, nil, []PrefixRule{{Prefix: "9", Bucket: BucketPayable}})
	if !errors.Is(err, xerrors.ErrUnknownBucket) {
		t.Fatalf("expected ErrUnknownBucket for prefix, got %v", err)
	}
}

func TestRouterRejectsDuplicatePrefix(t *testing.T) {
	known := map[Bucket]bool{BucketCash: true, BucketOtherAssets: true}

	_, err := NewRouter(known, nil, []PrefixRule{
		{Prefix: "1", Bucket: BucketCash},
		{Prefix: "1", Bucket: BucketOtherAssets},
	})
	if !errors.Is(err, xerrors.ErrDuplicateRoute) {
		t.Fatalf("expected ErrDuplicateRoute, got %v", err)
	}
}
