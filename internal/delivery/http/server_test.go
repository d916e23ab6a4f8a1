package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"postboard/config"
	"postboard/internal/delivery/http/middleware"
	"postboard/internal/delivery/http/router"
	"postboard/internal/delivery/http/router/handler"
	"postboard/internal/domain/constants"
	"postboard/internal/domain/service"
	"postboard/internal/infra/auth"
	"postboard/internal/infra/persistence/gormstore"
	"postboard/internal/infra/pubsub"
	"postboard/internal/infra/qrcode"
	"postboard/internal/infra/storage"
	"postboard/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []*service.MailMessage
}

func (m *recordingMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)

	return nil
}

type testAPI struct {
	server *httptest.Server
	mailer *recordingMailer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			SQLitePath:  filepath.Join(t.TempDir(), "api.db"),
			AutoMigrate: true,
		},
		JWT:        config.JWTConfig{SecretKey: "test-secret", Algorithm: "HS256"},
		Auth:       &config.AuthConfig{BcryptCost: 4},
		Mail:       &config.MailConfig{},
		Storage:    &config.StorageConfig{MaxUploadBytes: 1 << 20},
		TestRoutes: &config.TestRoutesConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := gormstore.Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc: lc, Ctx: context.Background(), Config: cfg, Logger: logger,
	})
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	mailer := &recordingMailer{}
	userRepo := gormstore.NewUserRepository(db)
	identity := impl.NewIdentityService(impl.IdentityServiceParams{
		UserRepo: userRepo, TokenService: tokens, Logger: logger,
	})
	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    gormstore.NewTransactionManager(db),
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Mailer:       mailer,
		Config:       cfg,
		Logger:       logger,
	})
	posts := impl.NewPostService(impl.PostServiceParams{
		PostRepo:    gormstore.NewPostRepository(db),
		CommentRepo: gormstore.NewCommentRepository(db),
		LikeRepo:    gormstore.NewLikeRepository(db),
		Publisher:   publisher,
		QRService:   qrcode.NewQRCodeService(cfg),
		Logger:      logger,
	})
	files := impl.NewFileService(impl.FileServiceParams{
		Store: storage.NewBucketStore(bucket, ""), Config: cfg, Logger: logger,
	})

	e := newEcho(cfg, logger, middleware.NewErrorMiddleware(logger), router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			Auth: authUsecase, Identity: identity, Config: cfg, Logger: logger,
		}),
		PostHandler:    handler.NewPostHandler(posts),
		FileHandler:    handler.NewFileHandler(handler.FileHandlerParams{Files: files, Config: cfg}),
		TestHandler:    handler.NewTestHandler(mailer),
		AuthMiddleware: middleware.NewAuthMiddleware(identity),
		Config:         cfg,
	})

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &testAPI{server: server, mailer: mailer}
}

func (api *testAPI) do(t *testing.T, method, path, token, contentType string, body io.Reader) (*http.Response, map[string]any) {
	t.Helper()

	target := path
	if !strings.HasPrefix(path, "http") {
		target = api.server.URL + path
	}

	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := api.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)

	return resp, decoded
}

func (api *testAPI) postJSON(t *testing.T, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	return api.do(t, http.MethodPost, path, token, "application/json", bytes.NewReader(data))
}

func (api *testAPI) register(t *testing.T, email, password string) map[string]any {
	t.Helper()

	resp, body := api.postJSON(t, "/register", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return body
}

func (api *testAPI) login(t *testing.T, email, password string) (*http.Response, map[string]any) {
	t.Helper()

	form := url.Values{"username": {email}, "password": {password}}

	return api.do(t, http.MethodPost, "/token", "", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// signUp registers, confirms and logs in, returning an access token.
func (api *testAPI) signUp(t *testing.T, email string) string {
	t.Helper()

	body := api.register(t, email, "pw")
	resp, _ := api.do(t, http.MethodGet, body["confirmation_url"].(string), "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, tokenBody := api.login(t, email, "pw")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return tokenBody["access_token"].(string)
}

func TestAPI_RegisterConfirmLogin(t *testing.T) {
	api := newTestAPI(t)

	body := api.register(t, "a@x.com", "pw")
	assert.Equal(t, "a@x.com", body["email"])
	assert.NotEmpty(t, body["detail"])
	confirmURL := body["confirmation_url"].(string)
	assert.True(t, strings.HasPrefix(confirmURL, api.server.URL+"/confirm/"))

	require.Len(t, api.mailer.sent, 1)
	assert.Contains(t, api.mailer.sent[0].Text, confirmURL)

	resp, errBody := api.login(t, "a@x.com", "pw")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "unconfirmed users cannot log in")
	assert.Equal(t, "Incorrect email or password", errBody["detail"])
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

	resp, confirmBody := api.do(t, http.MethodGet, confirmURL, "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User confirmed", confirmBody["detail"])

	resp, _ = api.do(t, http.MethodGet, confirmURL, "", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "confirmation is idempotent")

	resp, tokenBody := api.login(t, "a@x.com", "pw")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, tokenBody["access_token"])
	assert.Equal(t, "bearer", tokenBody["token_type"])

	resp, whoami := api.do(t, http.MethodGet, "/test/whoami", tokenBody["access_token"].(string), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, whoami["confirmed"])
}

func TestAPI_RegisterRejectsDuplicatesAndBadInput(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "dup@x.com", "pw")

	resp, body := api.postJSON(t, "/register", "", map[string]string{"email": "dup@x.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User with email already existed: dup@x.com", body["detail"])
	assert.Equal(t, "DUPLICATE_IDENTITY", body["code"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Equal(t, resp.Header.Get("X-Request-Id"), body["request_id"])

	resp, body = api.postJSON(t, "/register", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.NotEmpty(t, body["errors"])
}

func TestAPI_ConfirmRejectsBadTokens(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodGet, "/confirm/garbage", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["detail"])

	access := api.signUp(t, "kind@x.com")
	resp, body = api.do(t, http.MethodGet, "/confirm/"+access, "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_KIND_MISMATCH", body["code"])
}

func TestAPI_ConfirmRejectsExpiredToken(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "late@x.com", "pw")

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "late@x.com",
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"type": "confirmation",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	resp, body := api.do(t, http.MethodGet, "/confirm/"+expired, "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_EXPIRED", body["code"])
	assert.Equal(t, "Token has expired", body["detail"])

	resp, _ = api.login(t, "late@x.com", "pw")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "an expired link does not confirm")
}

func TestAPI_LoginWrongPasswordBeforeConfirmation(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "early@x.com", "pw")

	resp, body := api.login(t, "early@x.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTHENTICATION_FAILED", body["code"])
	assert.Equal(t, "Incorrect email or password", body["detail"])
}

func TestAPI_ConfirmationTokenIsNotABearer(t *testing.T) {
	api := newTestAPI(t)
	body := api.register(t, "link@x.com", "pw")
	confirmToken := strings.TrimPrefix(body["confirmation_url"].(string), api.server.URL+"/confirm/")
	require.NotEmpty(t, confirmToken)

	resp, errBody := api.postJSON(t, "/post", confirmToken, map[string]string{"body": "hi"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_KIND_MISMATCH", errBody["code"])
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestAPI_ProtectedRoutesRequireBearer(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.postJSON(t, "/post", "", map[string]string{"body": "hi"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "NOT_AUTHENTICATED", body["code"])
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

	resp, body = api.postJSON(t, "/post", "not-a-jwt", map[string]string{"body": "hi"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALID", body["code"])
}

func TestAPI_PostsCommentsLikes(t *testing.T) {
	api := newTestAPI(t)
	token := api.signUp(t, "poster@x.com")

	resp, first := api.postJSON(t, "/post", token, map[string]string{"body": "first"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, second := api.postJSON(t, "/post", token, map[string]string{"body": "second"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	firstID := int64(first["id"].(float64))

	resp, like := api.postJSON(t, "/like", token, map[string]int64{"post_id": firstID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, first["id"], like["post_id"])

	resp, comment := api.postJSON(t, "/comment", token, map[string]any{"post_id": firstID, "body": "nice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "nice", comment["body"])

	resp, _ = api.postJSON(t, "/comment", token, map[string]any{"post_id": 999, "body": "nope"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	listPosts := func(sorting string) []map[string]any {
		res, err := api.server.Client().Get(api.server.URL + "/posts?sorting=" + sorting)
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var out []map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

		return out
	}

	newest := listPosts("new")
	require.Len(t, newest, 2)
	assert.Equal(t, second["id"], newest[0]["id"])

	mostLiked := listPosts("most_likes")
	assert.Equal(t, first["id"], mostLiked[0]["id"])
	assert.Equal(t, float64(1), mostLiked[0]["likes"])

	resp, body := api.do(t, http.MethodGet, "/posts?sorting=random", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing information of sorting", body["detail"])

	resp, detail := api.do(t, http.MethodGet, "/posts/"+jsonNumber(first["id"]), "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), detail["post"].(map[string]any)["likes"])
	assert.Len(t, detail["comments"], 1)

	resp, _ = api.do(t, http.MethodGet, "/posts/0", "", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = api.do(t, http.MethodGet, "/posts/12345", "", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post with id=12345 not found", body["detail"])

	res, err := api.server.Client().Get(api.server.URL + "/posts/" + jsonNumber(first["id"]) + "/qrcode")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))
}

func TestAPI_UploadListDownload(t *testing.T) {
	api := newTestAPI(t)
	token := api.signUp(t, "files@x.com")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello file"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, body := api.do(t, http.MethodPost, "/upload", token, writer.FormDataContentType(), &buf)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Successfully uploaded notes.txt", body["detail"])
	fileURL := body["file_url"].(string)
	assert.True(t, strings.HasSuffix(fileURL, "/files/users/1/notes.txt"))

	resp, list := api.do(t, http.MethodGet, "/files?prefix=users/", "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), list["count"])

	res, err := api.server.Client().Get(fileURL)
	require.NoError(t, err)
	defer res.Body.Close()
	content, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "hello file", string(content))

	resp, _ = api.do(t, http.MethodGet, "/files/users/1/missing.txt", "", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func jsonNumber(v any) string {
	data, _ := json.Marshal(v)

	return string(data)
}

func TestRequirePublicURL(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		publicURL string
		wantErr   bool
	}{
		{name: "develop falls back to host", env: constants.EnvDevelop},
		{name: "production with public url", env: constants.EnvProduction, publicURL: "https://postboard.example.com"},
		{name: "production without public url", env: constants.EnvProduction, wantErr: true},
		{name: "unset env without public url", env: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Env = tt.env
			cfg.HTTP.PublicURL = tt.publicURL

			err := requirePublicURL(cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewServer_RequiresPublicURLOutsideDevelop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Nil(t, srv)
	assert.ErrorContains(t, err, "http.publicUrl")
}
