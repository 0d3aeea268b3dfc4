package format

import (
	"testing"
	"time"

	"finitefield.org/landing-web/internal/lang"
)

func TestJoinList(t *testing.T) {
	items := []string{"市场数据", "竞品信息"}
	if got := JoinList(lang.ZH, items); got != "市场数据、竞品信息" {
		t.Fatalf("unexpected zh join: %q", got)
	}
	if got := JoinList(lang.EN, []string{"Market data", "Competitors"}); got != "Market data, Competitors" {
		t.Fatalf("unexpected en join: %q", got)
	}
	if got := JoinList(lang.EN, nil); got != "" {
		t.Fatalf("expected empty join, got %q", got)
	}
}

func TestStaggerIsProportionalToIndex(t *testing.T) {
	s := Stagger{Base: 700 * time.Millisecond, Step: 100 * time.Millisecond}
	if got := s.Delay(0); got != 700*time.Millisecond {
		t.Fatalf("delay(0)=%s", got)
	}
	if got := s.Delay(3); got != time.Second {
		t.Fatalf("delay(3)=%s", got)
	}
	if got := s.CSS(2); got != "animation-delay:900ms" {
		t.Fatalf("css(2)=%q", got)
	}
	if got := s.Delay(-1); got != 700*time.Millisecond {
		t.Fatalf("negative index should clamp, got %s", got)
	}
}

func TestOrdinalAndDates(t *testing.T) {
	if got := Ordinal("步骤 {n}", 1); got != "步骤 2" {
		t.Fatalf("ordinal: %q", got)
	}
	d := time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC)
	if got := Year(d); got != "2025" {
		t.Fatalf("year: %q", got)
	}
	if got := Date(d, lang.ZH); got != "2025年12月16日" {
		t.Fatalf("zh date: %q", got)
	}
	if got := Date(d, lang.EN); got != "Dec 16, 2025" {
		t.Fatalf("en date: %q", got)
	}
}
