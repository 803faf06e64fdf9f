package scoring

import "testing"

func TestPPMValue(t *testing.T) {
	tests := []struct {
		name     string
		rejected float64
		total    float64
		want     int64
	}{
		{"zero defects", 0, 1000, 0},
		{"one per thousand", 1, 1000, 1000},
		{"heavy rejection", 20, 25, 800000},
		{"all rejected", 10, 10, 1000000},
		{"rounding", 1, 3, 333333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PPMValue(tt.rejected, tt.total)
			if err != nil {
				t.Fatalf("PPMValue(%v, %v) error: %v", tt.rejected, tt.total, err)
			}
			if got != tt.want {
				t.Errorf("PPMValue(%v, %v) = %v, want %v", tt.rejected, tt.total, got, tt.want)
			}
		})
	}
}

// PPM随不良数线性增长
func TestPPMValueScalesLinearly(t *testing.T) {
	const total = 2000
	base, err := PPMValue(1, total)
	if err != nil {
		t.Fatalf("PPMValue error: %v", err)
	}
	for j := int64(2); j <= 10; j++ {
		got, err := PPMValue(float64(j), total)
		if err != nil {
			t.Fatalf("PPMValue error: %v", err)
		}
		if got != base*j {
			t.Errorf("PPMValue(%d, %d) = %v, want %v", j, total, got, base*j)
		}
	}
}

func TestPPMValueRejectsBadInput(t *testing.T) {
	if _, err := PPMValue(1, 0); err == nil {
		t.Fatal("expected error for zero total received")
	}
	if _, err := PPMValue(-1, 100); err == nil {
		t.Fatal("expected error for negative rejected quantity")
	}
}

func TestClassifyDefectRateFixed(t *testing.T) {
	tests := []struct {
		name       string
		rejected   float64
		total      float64
		wantRating string
		wantLabel  string
	}{
		{"zero defects", 0, 500, "Zero Defects", "Excellent (0 PPM)"},
		{"under one thousand ppm", 1, 2000, "Excellent", "Good (<1K PPM)"},
		{"under ten thousand ppm", 5, 1000, "Good", "Average (1K-10K PPM)"},
		{"heavy rejection", 20, 25, "Needs Improvement", "Poor (>10K PPM)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyDefectRate(tt.rejected, tt.total)
			if err != nil {
				t.Fatalf("ClassifyDefectRate error: %v", err)
			}
			if got.Rating != tt.wantRating {
				t.Errorf("rating = %q, want %q", got.Rating, tt.wantRating)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestClassifyDefectRateWithConfig(t *testing.T) {
	p := DefectRateParams{
		ExcellentPPM:   500,
		GoodPPM:        5000,
		ZeroLabel:      "Flawless",
		ExcellentLabel: "World Class",
		GoodLabel:      "Acceptable",
		PoorLabel:      "Critical",
	}

	tests := []struct {
		rejected   float64
		total      float64
		wantRating string
	}{
		{0, 100, "Flawless"},
		{1, 10000, "World Class"},   // 100 ppm
		{1, 1000, "Acceptable"},     // 1000 ppm
		{1, 100, "Critical"},        // 10000 ppm
	}

	for _, tt := range tests {
		got, err := ClassifyDefectRateWithConfig(tt.rejected, tt.total, p)
		if err != nil {
			t.Fatalf("ClassifyDefectRateWithConfig error: %v", err)
		}
		if got.Rating != tt.wantRating {
			t.Errorf("rating for %v/%v = %q, want %q", tt.rejected, tt.total, got.Rating, tt.wantRating)
		}
	}
}
