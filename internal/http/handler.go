package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jobnest/jobnest-api/internal/config"
	"github.com/jobnest/jobnest-api/internal/domain"
	"github.com/jobnest/jobnest-api/internal/log"
	"github.com/jobnest/jobnest-api/internal/queue"
	"github.com/jobnest/jobnest-api/internal/repo"
)

const sessionCookie = "token"

type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindUserByVerificationToken(ctx context.Context, code string) (*domain.User, error)
	FindUserByResetToken(ctx context.Context, token string) (*domain.User, error)
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, t time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiresAt time.Time) error
	ReplacePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error
}

type JobStore interface {
	CreateJob(ctx context.Context, j *domain.Job) error
	FindJobByID(ctx context.Context, id primitive.ObjectID) (*domain.Job, error)
	ListJobs(ctx context.Context, limit, skip int) ([]domain.Job, int64, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]domain.Job, error)
	UpdateJob(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteJob(ctx context.Context, id primitive.ObjectID) error
}

type CompanyStore interface {
	CreateCompany(ctx context.Context, c *domain.Company) error
	FindCompanyByID(ctx context.Context, id primitive.ObjectID) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

type ApplicationStore interface {
	CreateApplication(ctx context.Context, a *domain.Application) error
	FindApplicationByID(ctx context.Context, id primitive.ObjectID) (*domain.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]domain.Application, error)
	ListApplicationsByCandidate(ctx context.Context, candidateID primitive.ObjectID) ([]domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus) error
}

type SavedJobStore interface {
	SaveJob(ctx context.Context, userID, jobID primitive.ObjectID) (*domain.SavedJob, error)
	ListSavedJobs(ctx context.Context, userID primitive.ObjectID) ([]domain.SavedJob, error)
	DeleteSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) error
}

// Store is what the handlers need from persistence; *repo.Store implements it.
type Store interface {
	UserStore
	JobStore
	CompanyStore
	ApplicationStore
	SavedJobStore
	Ping(ctx context.Context) error
}

type Handler struct {
	Store  Store
	Cfg    config.Config
	Redis  *repo.Redis
	Events queue.Publisher
}

func NewHandler(store Store, cfg config.Config, rds *repo.Redis, pub queue.Publisher) *Handler {
	if pub == nil {
		pub = queue.NewNoop()
	}
	return &Handler{Store: store, Cfg: cfg, Redis: rds, Events: pub}
}

func (h *Handler) sessionTTL() time.Duration {
	return time.Duration(h.Cfg.SessionTTLDays) * 24 * time.Hour
}

// setSessionCookie delivers the signed credential. Cookie lifetime is
// configured separately from the JWT validity (CookieTTLDays vs
// SessionTTLDays); a cookie that outlives its token just fails verification.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookie, token, h.Cfg.CookieTTLDays*24*3600, "/", "", true, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
}

// publish fires the event on a detached goroutine after the state change has
// committed. A publish failure is logged, never surfaced to the request.
func (h *Handler) publish(c *gin.Context, key string, event any) {
	reqID := c.GetString(requestIDKey)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Events.Publish(ctx, key, event, reqID); err != nil {
			log.L().Error("publish event failed", zap.String("key", key), zap.Error(err))
		}
	}()
}

// currentUser loads the record behind the already-verified session.
func (h *Handler) currentUser(c *gin.Context) (*domain.User, error) {
	uid := c.GetString(ctxUserID)
	id, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return nil, repo.ErrNotFound
	}
	return h.Store.FindUserByID(c.Request.Context(), id)
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
