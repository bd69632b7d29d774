package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"course-marketplace/src/jobs"
	"course-marketplace/src/middleware"
	"course-marketplace/src/repositories/memory"
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	tokens, err := utils.NewTokenManager([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	return New(Dependencies{
		Admins:     memory.NewAdminRepository(),
		Users:      memory.NewUserRepository(),
		Courses:    memory.NewCourseRepository(),
		Receipts:   jobs.NewReceiptQueue(nil),
		Tokens:     tokens,
		Limiter:    middleware.NewRateLimiter(nil),
		BcryptCost: bcrypt.MinCost,
	})
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded, raw
}

func signup(t *testing.T, app *fiber.App, kind, username, password string) string {
	t.Helper()
	status, body, raw := call(t, app, http.MethodPost, "/"+kind+"/signup", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, status, string(raw))
	return body["token"].(string)
}

func createCourse(t *testing.T, app *fiber.App, adminToken string, course map[string]interface{}) string {
	t.Helper()
	status, body, raw := call(t, app, http.MethodPost, "/admin/courses", adminToken, course)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "Course created successfully", body["message"])
	return body["courseId"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, _, raw := call(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "API is running")
}

func TestAdminSignupTwiceConflicts(t *testing.T) {
	app := newTestApp(t)

	status, body, _ := call(t, app, http.MethodPost, "/admin/signup", "", map[string]string{"username": "a", "password": "p"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Admin created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	status, body, _ = call(t, app, http.MethodPost, "/admin/signup", "", map[string]string{"username": "a", "password": "p2"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Admin already exists", body["message"])
}

func TestUserAndAdminNamespacesAreIndependent(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "admin", "same", "p")
	signup(t, app, "users", "same", "p")

	status, body, _ := call(t, app, http.MethodPost, "/users/signup", "", map[string]string{"username": "same", "password": "x"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Already User Exist", body["message"])
}

func TestSignupMissingFields(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/admin/signup", "/admin/login", "/users/signup", "/users/login"} {
		status, body, _ := call(t, app, http.MethodPost, path, "", map[string]string{"username": "a"})
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, "Username and password are required", body["message"], path)
	}
}

func TestLoginWrongPasswordAlwaysFails(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "admin", "a", "p")
	signup(t, app, "users", "u", "p")

	for i := 0; i < 3; i++ {
		status, body, _ := call(t, app, http.MethodPost, "/admin/login", "", map[string]string{"username": "a", "password": "p"})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Admin Logged", body["message"])

		status, body, _ = call(t, app, http.MethodPost, "/users/login", "", map[string]string{"username": "u", "password": "p"})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Logged in successfully", body["message"])

		status, body, _ = call(t, app, http.MethodPost, "/admin/login", "", map[string]string{"username": "a", "password": "bad"})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Invalid username or password", body["message"])

		status, _, _ = call(t, app, http.MethodPost, "/users/login", "", map[string]string{"username": "u", "password": "bad"})
		assert.Equal(t, http.StatusForbidden, status)
	}
}

func TestAdminMe(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "admin", "a", "p")

	status, body, _ := call(t, app, http.MethodGet, "/admin/me", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a", body["username"])

	status, _, _ = call(t, app, http.MethodGet, "/admin/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = call(t, app, http.MethodGet, "/admin/me", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestUserTokenCannotUseAdminRoutes(t *testing.T) {
	app := newTestApp(t)
	userToken := signup(t, app, "users", "u", "p")

	status, _, _ := call(t, app, http.MethodGet, "/admin/courses", userToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _, _ = call(t, app, http.MethodPost, "/admin/courses", userToken, map[string]interface{}{"title": "X"})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestUnpublishedCourseHiddenFromCatalogButReadableByID(t *testing.T) {
	app := newTestApp(t)
	adminToken := signup(t, app, "admin", "a", "p")

	id := createCourse(t, app, adminToken, map[string]interface{}{"title": "X", "price": 10, "published": false})
	createCourse(t, app, adminToken, map[string]interface{}{"title": "Y", "price": 5, "published": true})

	status, body, _ := call(t, app, http.MethodGet, "/users/courses", "", nil)
	require.Equal(t, http.StatusOK, status)
	catalog := body["courses"].([]interface{})
	require.Len(t, catalog, 1)
	assert.Equal(t, "Y", catalog[0].(map[string]interface{})["title"])

	status, body, _ = call(t, app, http.MethodGet, "/users/course/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	course := body["course"].(map[string]interface{})
	assert.Equal(t, "X", course["title"])
	assert.Equal(t, id, course["_id"])
	assert.Equal(t, false, course["published"])

	_, _, raw := call(t, app, http.MethodGet, "/admin/courses", adminToken, nil)
	var all []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &all))
	assert.Len(t, all, 2)
}

func TestCourseNotFound(t *testing.T) {
	app := newTestApp(t)
	adminToken := signup(t, app, "admin", "a", "p")
	missing := primitive.NewObjectID().Hex()

	status, body, _ := call(t, app, http.MethodGet, "/users/course/"+missing, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["message"])

	status, _, _ = call(t, app, http.MethodGet, "/admin/course/not-an-id", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = call(t, app, http.MethodPut, "/admin/course/"+missing, adminToken, map[string]interface{}{"title": "Z"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = call(t, app, http.MethodDelete, "/admin/course/"+missing, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUpdateAndDeleteCourse(t *testing.T) {
	app := newTestApp(t)
	adminToken := signup(t, app, "admin", "a", "p")
	id := createCourse(t, app, adminToken, map[string]interface{}{"title": "X", "description": "d", "price": 10})

	status, body, _ := call(t, app, http.MethodPut, "/admin/course/"+id, adminToken, map[string]interface{}{"published": true})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Updated Successfully", body["message"])
	updated := body["updateCourse"].(map[string]interface{})
	assert.Equal(t, true, updated["published"])
	assert.Equal(t, "d", updated["description"])

	status, _, _ = call(t, app, http.MethodPut, "/admin/courses/"+id, adminToken, map[string]interface{}{"price": 12})
	assert.Equal(t, http.StatusOK, status)

	status, body, _ = call(t, app, http.MethodGet, "/admin/course/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 12.0, body["course"].(map[string]interface{})["price"])

	status, _, _ = call(t, app, http.MethodDelete, "/admin/course/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body, _ = call(t, app, http.MethodDelete, "/admin/course/"+id, adminToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Course deleted successfully", body["message"])

	status, _, _ = call(t, app, http.MethodGet, "/users/course/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPurchaseFlow(t *testing.T) {
	app := newTestApp(t)
	adminToken := signup(t, app, "admin", "a", "p")
	userToken := signup(t, app, "users", "u", "p")
	id := createCourse(t, app, adminToken, map[string]interface{}{"title": "X", "price": 10, "published": true})

	for want := 1; want <= 2; want++ {
		status, body, _ := call(t, app, http.MethodPost, "/users/courses/"+id, userToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Course purchased successfully", body["message"])

		status, body, _ = call(t, app, http.MethodGet, "/users/purchasedCourses", userToken, nil)
		require.Equal(t, http.StatusOK, status)
		purchased := body["purchasedCourse"].([]interface{})
		require.Len(t, purchased, want)
		assert.Equal(t, "X", purchased[want-1].(map[string]interface{})["title"])
	}

	status, body, _ := call(t, app, http.MethodPost, "/users/courses/"+primitive.NewObjectID().Hex(), userToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["message"])

	status, _, _ = call(t, app, http.MethodPost, "/users/courses/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminTokenCannotPurchase(t *testing.T) {
	app := newTestApp(t)
	adminToken := signup(t, app, "admin", "a", "p")
	id := createCourse(t, app, adminToken, map[string]interface{}{"title": "X", "price": 10})

	status, body, _ := call(t, app, http.MethodPost, "/users/courses/"+primitive.NewObjectID().Hex(), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["message"])

	status, body, _ = call(t, app, http.MethodPost, "/users/courses/"+id, adminToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "User not found", body["message"])

	status, body, _ = call(t, app, http.MethodGet, "/users/purchasedCourses", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "User not found", body["message"])
}

func TestSwaggerDocIsServed(t *testing.T) {
	app := newTestApp(t)
	status, body, _ := call(t, app, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2.0", body["swagger"])
	assert.Contains(t, body["paths"].(map[string]interface{}), "/users/purchasedCourses")
}
