package scoring

import "testing"

func TestScoreQualityFixedTable(t *testing.T) {
	tests := []struct {
		name          string
		notifications int
		inspection    string
		wantScore     float64
	}{
		{"clean record", 0, "OK", 100},
		{"one notification failed inspection", 1, "NOT_OK", 40.5},
		{"few notifications passed", 3, "OK", 90},
		{"some notifications passed", 8, "OK", 80},
		{"many notifications passed", 15, "OK", 70},
		{"excessive notifications passed", 30, "OK", 60},
		{"worst case", 51, "NOT_OK", 3},
		{"boundary five", 5, "OK", 90},
		{"boundary six", 6, "OK", 80},
		{"boundary fifty", 50, "NOT_OK", 10.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreQuality(tt.notifications, tt.inspection)
			if err != nil {
				t.Fatalf("ScoreQuality(%d, %q) error: %v", tt.notifications, tt.inspection, err)
			}
			if got.Score != tt.wantScore {
				t.Errorf("ScoreQuality(%d, %q) = %v, want %v", tt.notifications, tt.inspection, got.Score, tt.wantScore)
			}
		})
	}
}

func TestQualitySubScores(t *testing.T) {
	if s := NotificationScore(1); s != 80 {
		t.Errorf("NotificationScore(1) = %v, want 80", s)
	}
	if s := InspectionScore("NOT_OK"); s != 1 {
		t.Errorf("InspectionScore(NOT_OK) = %v, want 1", s)
	}
	if s := InspectionScore("OK"); s != 100 {
		t.Errorf("InspectionScore(OK) = %v, want 100", s)
	}
}

func TestScoreQualityRejectsBadInput(t *testing.T) {
	if _, err := ScoreQuality(-1, "OK"); err == nil {
		t.Fatal("expected error for negative notification count")
	}
	if _, err := ScoreQuality(0, "maybe"); err == nil {
		t.Fatal("expected error for unknown inspection result")
	}
}

func TestScoreQualityWithConfig(t *testing.T) {
	p := QualityParams{
		BaseScore:              100,
		NotificationPenalty:    2,
		InspectionOKBonus:      0,
		InspectionNotOKPenalty: 50,
		MinimumScore:           1,
	}

	tests := []struct {
		name          string
		notifications int
		inspection    string
		wantScore     float64
	}{
		{"clean record", 0, "OK", 100},
		{"linear penalty", 10, "OK", 80},
		{"failed inspection", 10, "NOT_OK", 30},
		{"floored at minimum", 60, "NOT_OK", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreQualityWithConfig(tt.notifications, tt.inspection, p)
			if err != nil {
				t.Fatalf("ScoreQualityWithConfig error: %v", err)
			}
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}
