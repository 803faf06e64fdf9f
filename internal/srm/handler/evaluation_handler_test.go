package handler

import (
	"net/http"
	"testing"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/config"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/service"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/testutil"
)

func setupEvaluationTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svcs := service.NewServices(repos, nil, &config.Config{})
	handlers := NewHandlers(svcs)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/srm")

	evals := api.Group("/evaluations")
	evals.GET("", handlers.Evaluation.ListEvaluations)
	evals.POST("/price", handlers.Evaluation.CreatePriceEvaluation)
	evals.POST("/quantity", handlers.Evaluation.CreateQuantityEvaluation)
	evals.POST("/delivery", handlers.Evaluation.CreateDeliveryEvaluation)
	evals.POST("/quality", handlers.Evaluation.CreateQualityEvaluation)
	evals.POST("/defect-rate", handlers.Evaluation.CreateDefectRateEvaluation)
	evals.GET("/supplier/:supplierId", handlers.Evaluation.GetSupplierHistory)
	evals.GET("/:id", handlers.Evaluation.GetEvaluation)

	configs := api.Group("/scoring-configs")
	configs.POST("", handlers.ScoringConfig.CreateConfig)
	configs.POST("/preview", handlers.ScoringConfig.PreviewConfig)
	configs.POST("/:id/activate", handlers.ScoringConfig.ActivateConfig)

	kpis := api.Group("/kpis")
	kpis.GET("/:supplierId", handlers.Kpi.GetKpi)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestPriceEvaluationFixedTable tests price evaluation against the default banding table
// and verifies the supplier KPI is recomputed after the write.
func TestPriceEvaluationFixedTable(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	supplier := testutil.SeedTestSupplier(t, env.DB, "sup-eval-001", "SUP-E001", "结构件供应商A")

	// +10% overrun lands in the [10, 20) band
	body := map[string]interface{}{
		"supplier_id":   supplier.ID,
		"po_price":      10.0,
		"invoice_price": 11.0,
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/price", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["score"].(float64) != 10 {
		t.Fatalf("expected score 10, got %v", data["score"])
	}
	if data["variance_percent"].(float64) != 10 {
		t.Fatalf("expected variance 10%%, got %v", data["variance_percent"])
	}
	if data["band"] != "major overrun" {
		t.Fatalf("expected band 'major overrun', got %v", data["band"])
	}

	// KPI was recomputed: one price evaluation, three empty categories
	w2 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/srm/kpis/"+supplier.ID, nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 for KPI, got %d: %s", w2.Code, w2.Body.String())
	}
	kpi := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if kpi["price_score"].(float64) != 10 {
		t.Fatalf("expected price_score 10, got %v", kpi["price_score"])
	}
	if kpi["overall_kpi"].(float64) != 2.5 {
		t.Fatalf("expected overall_kpi 2.5 (10/4), got %v", kpi["overall_kpi"])
	}
	if kpi["evaluation_count"].(float64) != 1 {
		t.Fatalf("expected evaluation_count 1, got %v", kpi["evaluation_count"])
	}

	// Supplier snapshot columns were synced
	var updated entity.Supplier
	env.DB.Where("id = ?", supplier.ID).First(&updated)
	if updated.PriceScore == nil || *updated.PriceScore != 10 {
		t.Fatalf("expected supplier price_score snapshot 10, got %v", updated.PriceScore)
	}
}

// TestDeliveryEvaluationOnTime tests that an on-time delivery scores 100.
func TestDeliveryEvaluationOnTime(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	supplier := testutil.SeedTestSupplier(t, env.DB, "sup-eval-002", "SUP-E002", "电子件供应商B")

	body := map[string]interface{}{
		"supplier_id":    supplier.ID,
		"scheduled_date": "2026-03-10",
		"actual_date":    "2026-03-10",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/delivery", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["score"].(float64) != 100 {
		t.Fatalf("expected score 100 for on-time delivery, got %v", data["score"])
	}
	if days, ok := data["overdue_days"]; ok && days.(float64) != 0 {
		t.Fatalf("expected overdue_days 0, got %v", days)
	}
}

// TestDefectRateClassification tests PPM classification and that defect-rate
// records stay out of the overall KPI.
func TestDefectRateClassification(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	supplier := testutil.SeedTestSupplier(t, env.DB, "sup-eval-003", "SUP-E003", "光学件供应商C")

	body := map[string]interface{}{
		"supplier_id":    supplier.ID,
		"rejected_qty":   20.0,
		"total_received": 25.0,
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/defect-rate", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["ppm"].(float64) != 800000 {
		t.Fatalf("expected ppm 800000, got %v", data["ppm"])
	}
	if data["band"] != "Needs Improvement" {
		t.Fatalf("expected band 'Needs Improvement', got %v", data["band"])
	}
	if data["band_label"] != "Poor (>10K PPM)" {
		t.Fatalf("expected band_label 'Poor (>10K PPM)', got %v", data["band_label"])
	}
	if _, hasScore := data["score"]; hasScore {
		t.Fatalf("defect-rate evaluation must not carry a score, got %v", data["score"])
	}

	// KPI count only spans the four scored categories
	w2 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/srm/kpis/"+supplier.ID, nil, token)
	kpi := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if kpi["evaluation_count"].(float64) != 0 {
		t.Fatalf("expected evaluation_count 0 after defect-rate only, got %v", kpi["evaluation_count"])
	}
	if kpi["overall_kpi"].(float64) != 0 {
		t.Fatalf("expected overall_kpi 0, got %v", kpi["overall_kpi"])
	}
}

// TestEvaluationValidation tests rejected inputs and unknown suppliers.
func TestEvaluationValidation(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	supplier := testutil.SeedTestSupplier(t, env.DB, "sup-eval-004", "SUP-E004", "包材供应商D")

	// Negative PO price passes binding but fails domain validation
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/price", map[string]interface{}{
		"supplier_id":   supplier.ID,
		"po_price":      -5.0,
		"invoice_price": 10.0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative po_price, got %d: %s", w.Code, w.Body.String())
	}

	// Unknown inspection result
	notifications := 0
	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/quality", map[string]interface{}{
		"supplier_id":   supplier.ID,
		"notifications": notifications,
		"inspection":    "MAYBE",
	}, token)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid inspection, got %d: %s", w2.Code, w2.Body.String())
	}

	// Unknown supplier
	w3 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/price", map[string]interface{}{
		"supplier_id":   "sup-missing",
		"po_price":      10.0,
		"invoice_price": 11.0,
	}, token)
	if w3.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown supplier, got %d: %s", w3.Code, w3.Body.String())
	}

	// No token
	w4 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/srm/evaluations", nil, "")
	if w4.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w4.Code)
	}
}

// TestActiveConfigSwitchesFormula tests that activating a scoring config routes
// new evaluations through the parametric formula instead of the fixed table.
func TestActiveConfigSwitchesFormula(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	supplier := testutil.SeedTestSupplier(t, env.DB, "sup-eval-005", "SUP-E005", "结构件供应商E")

	// Fixed table first: +3% overrun lands in [0, 5) → 40
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/price", map[string]interface{}{
		"supplier_id":   supplier.ID,
		"po_price":      100.0,
		"invoice_price": 103.0,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["score"].(float64) != 40 {
		t.Fatalf("expected fixed-table score 40, got %v", data["score"])
	}

	// Create and activate a parametric config with the default thresholds
	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/scoring-configs", map[string]interface{}{
		"category": "price",
		"name":     "2026年价格评分",
		"params": map[string]interface{}{
			"excellent_threshold":  -5.0,
			"good_threshold":       0.0,
			"acceptable_threshold": 2.0,
			"penalty_rate":         5.0,
			"minimum_score":        10.0,
		},
	}, token)
	if w2.Code != http.StatusCreated {
		t.Fatalf("expected 201 for config create, got %d: %s", w2.Code, w2.Body.String())
	}
	configID := testutil.ParseResponse(w2)["data"].(map[string]interface{})["id"].(string)

	w3 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/scoring-configs/"+configID+"/activate", nil, token)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 for activate, got %d: %s", w3.Code, w3.Body.String())
	}

	// Same input now scores through the formula: 70 - (3-2)*5 = 65
	w4 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/price", map[string]interface{}{
		"supplier_id":   supplier.ID,
		"po_price":      100.0,
		"invoice_price": 103.0,
	}, token)
	if w4.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w4.Code, w4.Body.String())
	}
	data4 := testutil.ParseResponse(w4)["data"].(map[string]interface{})
	if data4["score"].(float64) != 65 {
		t.Fatalf("expected parametric score 65, got %v", data4["score"])
	}
}

// TestConfigPreviewDoesNotPersist tests the preview endpoint scores sample input
// without writing an evaluation.
func TestConfigPreviewDoesNotPersist(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/scoring-configs/preview", map[string]interface{}{
		"category": "price",
		"params": map[string]interface{}{
			"excellent_threshold":  -5.0,
			"good_threshold":       0.0,
			"acceptable_threshold": 2.0,
			"penalty_rate":         5.0,
			"minimum_score":        10.0,
		},
		"po_price":      100.0,
		"invoice_price": 98.0,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for preview, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["score"].(float64) != 80 {
		t.Fatalf("expected preview score 80 for -2%% variance, got %v", data["score"])
	}

	var count int64
	env.DB.Model(&entity.PerformanceEvaluation{}).Count(&count)
	if count != 0 {
		t.Fatalf("preview must not persist evaluations, found %d", count)
	}
}

// TestSupplierHistory tests per-supplier evaluation history across categories.
func TestSupplierHistory(t *testing.T) {
	env := setupEvaluationTest(t)
	token := testutil.DefaultTestToken()

	supplier := testutil.SeedTestSupplier(t, env.DB, "sup-eval-006", "SUP-E006", "结构件供应商F")
	other := testutil.SeedTestSupplier(t, env.DB, "sup-eval-007", "SUP-E007", "结构件供应商G")

	received := 100.0
	testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/quantity", map[string]interface{}{
		"supplier_id":  supplier.ID,
		"ordered_qty":  100.0,
		"received_qty": received,
	}, token)
	notifications := 2
	testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/quality", map[string]interface{}{
		"supplier_id":   supplier.ID,
		"notifications": notifications,
		"inspection":    "OK",
	}, token)
	testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/srm/evaluations/price", map[string]interface{}{
		"supplier_id":   other.ID,
		"po_price":      10.0,
		"invoice_price": 9.0,
	}, token)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/srm/evaluations/supplier/"+supplier.ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	items := testutil.ParseResponse(w)["data"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(items))
	}

	// Quality score: mean of notification sub-score (2 → 80) and inspection OK (100) = 90
	w2 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/srm/kpis/"+supplier.ID, nil, token)
	kpi := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if kpi["quality_score"].(float64) != 90 {
		t.Fatalf("expected quality_score 90, got %v", kpi["quality_score"])
	}
	if kpi["quantity_score"].(float64) != 80 {
		t.Fatalf("expected quantity_score 80 for exact receipt, got %v", kpi["quantity_score"])
	}
	if kpi["evaluation_count"].(float64) != 2 {
		t.Fatalf("expected evaluation_count 2, got %v", kpi["evaluation_count"])
	}
}
