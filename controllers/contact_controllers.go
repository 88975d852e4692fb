package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"portfolio/dto"
	"portfolio/errors"
	"portfolio/models"
	"portfolio/response"
	"portfolio/services"
	"portfolio/services/logger"
	"portfolio/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const contactsCacheKey = "contacts:all"

// ContactController xử lý form liên hệ và các view quản trị liên hệ
type ContactController struct {
	store  services.ContactStore
	redis  *redis.Client
	logger logger.Logger
}

// ContactControllerOptions chứa các phụ thuộc của ContactController
type ContactControllerOptions struct {
	Store  services.ContactStore
	Redis  *redis.Client
	Logger logger.Logger
}

// NewContactController tạo một instance mới của ContactController
func NewContactController(opts ContactControllerOptions) *ContactController {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ContactController{
		store:  opts.Store,
		redis:  opts.Redis,
		logger: log,
	}
}

// CreateContact nhận form liên hệ từ trang portfolio
func (ctl *ContactController) CreateContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, email and message are required")
		return
	}

	if err := validator.ValidateContact(&req); err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := ctl.store.Create(&contact); err != nil {
		ctl.logger.Error("lưu liên hệ thất bại: %v", err)
		response.ServerError(c)
		return
	}

	if ctl.redis != nil {
		_ = services.DeleteFromRedis(c.Request.Context(), ctl.redis, contactsCacheKey)
	}

	response.Created(c, "Message received", gin.H{"id": contact.ID})
}

// GetContacts trả về danh sách liên hệ có phân trang, mới nhất trước
func (ctl *ContactController) GetContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	contacts, total, ok := ctl.cachedContacts(c)
	if !ok {
		var err error
		contacts, err = ctl.store.All()
		if err != nil {
			ctl.logger.Error("truy vấn liên hệ thất bại: %v", err)
			response.ServerError(c)
			return
		}
		total = len(contacts)
		if ctl.redis != nil {
			if err := services.SetToRedis(c.Request.Context(), ctl.redis, contactsCacheKey, contacts, 10*time.Minute); err != nil {
				ctl.logger.Error("cache liên hệ thất bại: %v", err)
			}
		}
	}

	start := (page - 1) * limit
	if start > len(contacts) {
		start = len(contacts)
	}
	end := start + limit
	if end > len(contacts) {
		end = len(contacts)
	}

	contactsResponse := make([]dto.ContactResponse, 0, end-start)
	for _, contact := range contacts[start:end] {
		contactsResponse = append(contactsResponse, toContactResponse(contact))
	}

	response.SuccessWithPagination(c, contactsResponse, page, limit, total)
}

// SearchContacts tìm liên hệ theo tên, email hoặc nội dung, không phân biệt dấu
func (ctl *ContactController) SearchContacts(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "q is required")
		return
	}

	contacts, err := ctl.store.All()
	if err != nil {
		ctl.logger.Error("truy vấn liên hệ thất bại: %v", err)
		response.ServerError(c)
		return
	}

	scored := scoreContacts(query, contacts)
	response.Success(c, scored)
}

func (ctl *ContactController) cachedContacts(c *gin.Context) ([]models.Contact, int, bool) {
	if ctl.redis == nil {
		return nil, 0, false
	}
	var contacts []models.Contact
	found, err := services.GetFromRedis(c.Request.Context(), ctl.redis, contactsCacheKey, &contacts)
	if err != nil || !found {
		return nil, 0, false
	}
	return contacts, len(contacts), true
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách tên
func createNameMatcher(contacts []models.Contact) *closestmatch.ClosestMatch {
	uniqueNames := make(map[string]bool)
	for _, contact := range contacts {
		if contact.Name != "" {
			uniqueNames[normalizeInput(contact.Name)] = true
		}
	}

	names := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		names = append(names, name)
	}
	return closestmatch.New(names, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tính điểm phù hợp cho một liên hệ
func calculateContactScore(query string, contact models.Contact, nameMatcher *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	normalizedName := normalizeInput(contact.Name)
	score := 0

	if nameMatcher.Closest(normalizedQuery) == normalizedName {
		score += 20
	}
	if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 15
	}
	if strings.Contains(normalizedName, normalizedQuery) {
		score += 10
	}
	if strings.Contains(normalizeInput(contact.Email), normalizedQuery) {
		score += 10
	}
	if strings.Contains(normalizeInput(contact.Message), normalizedQuery) {
		score += 5
	}

	return score
}

func scoreContacts(query string, contacts []models.Contact) []dto.ScoredContact {
	if len(contacts) == 0 {
		return []dto.ScoredContact{}
	}

	nameMatcher := createNameMatcher(contacts)

	scored := make([]dto.ScoredContact, 0, len(contacts))
	for _, contact := range contacts {
		score := calculateContactScore(query, contact, nameMatcher)
		if score > 0 {
			scored = append(scored, dto.ScoredContact{
				Contact: toContactResponse(contact),
				Score:   score,
			})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func toContactResponse(contact models.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
}
