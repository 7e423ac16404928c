package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

// signupAs registers a user, optionally assigns a role, and returns the
// session cookies.
func signupAs(t *testing.T, env *testEnv, email, role string) []*http.Cookie {
	t.Helper()
	w := env.do("POST", "/api/auth/signup",
		fmt.Sprintf(`{"email":%q,"password":"pw123456","name":"User"}`, email), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: %d %s", email, w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if role != "" {
		w = env.do("PUT", "/api/auth/update-user",
			fmt.Sprintf(`{"role":%q}`, role), cookies)
		if w.Code != http.StatusOK {
			t.Fatalf("set role %s: %d %s", role, w.Code, w.Body.String())
		}
	}
	return cookies
}

func createCompany(t *testing.T, env *testEnv, cookies []*http.Cookie, name string) string {
	t.Helper()
	w := env.do("POST", "/api/company",
		fmt.Sprintf(`{"name":%q,"logo_url":"https://cdn.example.com/logo.png"}`, name), cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create company: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Company struct {
			ID string `json:"id"`
		} `json:"company"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("company response: %v", err)
	}
	return resp.Company.ID
}

func createJob(t *testing.T, env *testEnv, cookies []*http.Cookie, companyID string) string {
	t.Helper()
	body := fmt.Sprintf(`{"title":"Go Engineer","company_id":%q,"description":"Build services","location":"Remote","requirements":"Go, MongoDB"}`, companyID)
	w := env.do("POST", "/api/jobs", body, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create job: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("job response: %v", err)
	}
	return resp.Job.ID
}

func Test_CreateJob_RequiresEmployer(t *testing.T) {
	env := newTestEnv(t)

	// no session at all
	w := env.do("POST", "/api/jobs", `{"title":"x"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie expected 401, got %d", w.Code)
	}

	// candidate session
	cookies := signupAs(t, env, "cand@x.com", "candidate")
	w = env.do("POST", "/api/jobs", `{"title":"x"}`, cookies)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("candidate expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func Test_CreateJob_UnknownCompany(t *testing.T) {
	env := newTestEnv(t)
	cookies := signupAs(t, env, "emp@x.com", "employer")

	body := `{"title":"Go Engineer","company_id":"64b0c8f3a1b2c3d4e5f60708","description":"d","location":"l","requirements":"r"}`
	w := env.do("POST", "/api/jobs", body, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown company expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func Test_JobLifecycle(t *testing.T) {
	env := newTestEnv(t)
	cookies := signupAs(t, env, "emp@x.com", "employer")
	companyID := createCompany(t, env, cookies, "Acme")
	jobID := createJob(t, env, cookies, companyID)

	// public read
	w := env.do("GET", "/api/jobs/"+jobID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get job: %d %s", w.Code, w.Body.String())
	}

	w = env.do("GET", "/api/jobs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list jobs: %d", w.Code)
	}
	var list struct {
		TotalJobs int `json:"total_jobs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list response: %v", err)
	}
	if list.TotalJobs != 1 {
		t.Fatalf("total_jobs = %d, want 1", list.TotalJobs)
	}

	// update by owner
	w = env.do("PUT", "/api/jobs/"+jobID, `{"is_open":false,"title":"Senior Go Engineer"}`, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("update job: %d %s", w.Code, w.Body.String())
	}
	w = env.do("GET", "/api/jobs/"+jobID, "", nil)
	var got struct {
		Job struct {
			Title  string `json:"title"`
			IsOpen bool   `json:"is_open"`
		} `json:"job"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("get response: %v", err)
	}
	if got.Job.Title != "Senior Go Engineer" || got.Job.IsOpen {
		t.Fatalf("update not applied: %+v", got.Job)
	}

	// update by a different employer
	other := signupAs(t, env, "emp2@x.com", "employer")
	w = env.do("PUT", "/api/jobs/"+jobID, `{"title":"hijack"}`, other)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("non-owner update expected 401, got %d", w.Code)
	}

	// delete
	w = env.do("DELETE", "/api/jobs/"+jobID, "", other)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("non-owner delete expected 401, got %d", w.Code)
	}
	w = env.do("DELETE", "/api/jobs/"+jobID, "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("delete job: %d %s", w.Code, w.Body.String())
	}
	w = env.do("GET", "/api/jobs/"+jobID, "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted job expected 404, got %d", w.Code)
	}
}

func Test_EmployerJobs(t *testing.T) {
	env := newTestEnv(t)
	cookies := signupAs(t, env, "emp@x.com", "employer")
	companyID := createCompany(t, env, cookies, "Acme")
	createJob(t, env, cookies, companyID)
	createJob(t, env, cookies, companyID)

	recruiterID := env.Store.userByEmail("emp@x.com").ID.Hex()
	w := env.do("GET", "/api/employer/"+recruiterID+"/jobs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("employer jobs: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Jobs []json.RawMessage `json:"jobs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response: %v", err)
	}
	if len(resp.Jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(resp.Jobs))
	}
}

func Test_CreateCompany_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	cookies := signupAs(t, env, "emp@x.com", "employer")

	createCompany(t, env, cookies, "Acme")
	w := env.do("POST", "/api/company",
		`{"name":"Acme","logo_url":"https://cdn.example.com/logo.png"}`, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate company expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
