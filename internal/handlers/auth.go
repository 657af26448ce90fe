package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/services/session"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

type AuthHandler struct {
	Identity  *identity.Service
	Session   *session.Service
	JWTSecret string
	Expires   int
}

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Type     string `json:"type"` // client / freelancer
	Wilaya   string `json:"wilaya"`
}

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

func userPayload(u models.User) fiber.Map {
	return fiber.Map{
		"name":   u.Name,
		"email":  u.Email,
		"phone":  u.Phone,
		"type":   u.Type,
		"wilaya": u.Wilaya,
		"avatar": u.Avatar,
	}
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "sa_token",
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	password := strings.TrimSpace(req.Password)
	wilaya := strings.TrimSpace(req.Wilaya)

	accountType := models.TypeClient
	if req.Type == string(models.TypeFreelancer) {
		accountType = models.TypeFreelancer
	}

	errors := FieldErrors{}

	if email == "" {
		errors.Add("email", "البريد الإلكتروني مطلوب")
	} else if !strings.Contains(email, "@") {
		errors.Add("email", "صيغة البريد الإلكتروني غير صحيحة")
	}
	if password == "" {
		errors.Add("password", "كلمة المرور مطلوبة")
	} else if len(password) < 6 {
		errors.Add("password", "كلمة المرور قصيرة جداً")
	}
	if phone != "" && len(phone) < 8 {
		errors.Add("phone", "رقم الهاتف غير صحيح")
	}
	if accountType == models.TypeFreelancer && wilaya == "" {
		errors.Add("wilaya", "الرجاء اختيار الولاية.")
	}

	if len(errors) > 0 {
		return validationFail(c, errors)
	}

	u := models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
		Type:     accountType,
		Wilaya:   wilaya,
	}

	stored, err := h.Identity.Add(c.Context(), u)
	switch err {
	case nil:
	case identity.ErrDuplicateEmail:
		errs := FieldErrors{}
		errs.Add("email", "هذا البريد الإلكتروني مسجل بالفعل.")
		return validationFail(c, errs)
	case identity.ErrDuplicatePhone:
		errs := FieldErrors{}
		errs.Add("phone", "رقم الهاتف هذا مسجل بالفعل.")
		return validationFail(c, errs)
	default:
		log.Println("Error adding user:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "حدث خطأ غير متوقع.",
		})
	}

	if err := h.Session.SetCurrent(c.Context(), stored.Email); err != nil {
		log.Println("Error setting session pointer:", err)
	}

	token, err := utils.SignJWT(h.JWTSecret, stored.Email, string(stored.Type), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "حدث خطأ غير متوقع.",
		})
	}
	h.setTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "تم إنشاء الحساب بنجاح",
		"data": fiber.Map{
			"user": userPayload(stored),
		},
	})
}

type LoginReq struct {
	Identifier string `json:"identifier"` // email or phone
	Password   string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	identifier := strings.TrimSpace(req.Identifier)
	password := strings.TrimSpace(req.Password)

	errors := FieldErrors{}
	if identifier == "" {
		errors.Add("identifier", "البريد الإلكتروني أو رقم الهاتف مطلوب")
	}
	if password == "" {
		errors.Add("password", "كلمة المرور مطلوبة")
	}
	if len(errors) > 0 {
		return validationFail(c, errors)
	}

	u, found := h.Identity.Find(c.Context(), identifier)
	// Plain string comparison; the users slot stores passwords as-is.
	// Known weakness, see DESIGN.md.
	if !found || u.Password != password {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "البيانات المدخلة غير صحيحة.",
		})
	}

	if err := h.Session.SetCurrent(c.Context(), u.Email); err != nil {
		log.Println("Error setting session pointer:", err)
	}

	token, err := utils.SignJWT(h.JWTSecret, u.Email, string(u.Type), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "حدث خطأ غير متوقع.",
		})
	}
	h.setTokenCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "تم تسجيل الدخول بنجاح",
		"data": fiber.Map{
			"user": userPayload(u),
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Session.Logout(c.Context()); err != nil {
		log.Println("Error clearing session pointer:", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "sa_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "تم تسجيل الخروج",
	})
}

// Me returns the signed-in account, resolved through the session
// pointer and the identity store.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, ok := h.Session.Current(c.Context())
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "المستخدم غير موجود",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    userPayload(u),
	})
}

type UpdateMeReq struct {
	Name     *string        `json:"name"`
	Phone    *string        `json:"phone"`
	Password *string        `json:"password"`
	Wilaya   *string        `json:"wilaya"`
	Avatar   *models.Avatar `json:"avatar"`
}

// UpdateMe shallow-merges the supplied fields onto the signed-in
// user's record.
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req UpdateMeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	updated, err := h.Identity.Update(c.Context(), email, identity.Changes{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		Wilaya:   req.Wilaya,
		Avatar:   req.Avatar,
	})
	if err == identity.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "المستخدم غير موجود",
		})
	}
	if err != nil {
		log.Println("Error updating user:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "حدث خطأ غير متوقع.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "تم تحديث الملف الشخصي",
		"data":    userPayload(updated),
	})
}
