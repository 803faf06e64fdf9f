package scoring

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScorePriceFixedTable(t *testing.T) {
	tests := []struct {
		name         string
		poPrice      float64
		invoicePrice float64
		wantScore    float64
	}{
		{"severe overrun", 100, 125, 5},
		{"major overrun", 100, 115, 10},
		{"moderate overrun", 100, 107, 20},
		{"minor overrun", 100, 103, 40},
		{"exact match", 100, 100, 40},
		{"slight saving", 100, 97, 60},
		{"good saving", 100, 92, 80},
		{"strong saving", 100, 85, 90},
		{"exceptional saving", 2.55, 1.27, 95},
		{"boundary 20 percent", 100, 120, 5},
		{"boundary 10 percent", 100, 110, 10},
		{"boundary 5 percent", 100, 105, 20},
		{"boundary minus 5", 100, 95, 80},
		{"boundary minus 20", 100, 80, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScorePrice(tt.poPrice, tt.invoicePrice)
			if err != nil {
				t.Fatalf("ScorePrice(%v, %v) error: %v", tt.poPrice, tt.invoicePrice, err)
			}
			if got.Score != tt.wantScore {
				t.Errorf("ScorePrice(%v, %v) = %v, want %v (variance %.2f%%)",
					tt.poPrice, tt.invoicePrice, got.Score, tt.wantScore, got.Variance)
			}
		})
	}
}

func TestScorePriceVariance(t *testing.T) {
	got, err := ScorePrice(2.55, 1.27)
	if err != nil {
		t.Fatalf("ScorePrice error: %v", err)
	}
	if math.Abs(got.Variance-(-50.196078431372548)) > 0.001 {
		t.Errorf("variance = %v, want about -50.2", got.Variance)
	}
	if got.Band != "exceptional saving" {
		t.Errorf("band = %q", got.Band)
	}
}

func TestScorePriceRejectsZeroPrice(t *testing.T) {
	if _, err := ScorePrice(0, 10); err == nil {
		t.Fatal("expected error for zero po price")
	}
	var verr *ValidationError
	_, err := ScorePrice(0, 10)
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "po_price" {
		t.Errorf("field = %q, want po_price", verr.Field)
	}
	if _, err := ScorePrice(10, 0); err == nil {
		t.Fatal("expected error for zero invoice price")
	}
}

// 固定表分数随价差上升单调不增（成本超支不会比节省得分更高）
func TestScorePriceFixedMonotonic(t *testing.T) {
	policy := FixedPricePolicy()
	prev := math.Inf(1)
	for v := -50.0; v <= 50.0; v += 0.5 {
		score, _ := policy.Score(v)
		if score > prev {
			t.Fatalf("score increased at variance %.1f: %v > %v", v, score, prev)
		}
		if score < 0 || score > 100 {
			t.Fatalf("score out of range at variance %.1f: %v", v, score)
		}
		prev = score
	}
}

func TestScorePriceWithConfig(t *testing.T) {
	p := PriceParams{
		ExcellentThreshold:  -5,
		GoodThreshold:       0,
		AcceptableThreshold: 2,
		PenaltyRate:         5,
		MinimumScore:        10,
	}

	tests := []struct {
		name         string
		poPrice      float64
		invoicePrice float64
		wantScore    float64
	}{
		{"excellent threshold", 100, 90, 100},
		{"good threshold", 100, 100, 80},
		{"acceptable threshold", 100, 102, 70},
		{"penalty applied", 100, 103, 65}, // 70 - (3-2)*5
		{"floored at minimum", 100, 200, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScorePriceWithConfig(tt.poPrice, tt.invoicePrice, p)
			if err != nil {
				t.Fatalf("ScorePriceWithConfig error: %v", err)
			}
			if !almostEqual(got.Score, tt.wantScore) {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

// 两套策略在同一输入上允许不一致（固定表[0,5)→40，默认参数→70），
// 这是有意保留的双策略设计
func TestPricePoliciesDiverge(t *testing.T) {
	fixedScore, _ := FixedPricePolicy().Score(3)
	paramScore, _ := ParametricPricePolicy(DefaultPriceParams()).Score(3)
	if fixedScore == paramScore {
		t.Errorf("expected policies to diverge at variance 3%%, both returned %v", fixedScore)
	}
	if fixedScore != 40 {
		t.Errorf("fixed table at 3%% = %v, want 40", fixedScore)
	}
}
