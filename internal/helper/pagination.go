package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 200
)

type PageParams struct {
	Page int // 0-based, mengikuti kontrak frontend lama
	Size int
}

func (p PageParams) Limit() int  { return p.Size }
func (p PageParams) Offset() int { return p.Page * p.Size }

// ParsePageParams membaca ?page= dan ?size= dengan fallback aman.
func ParsePageParams(c *fiber.Ctx) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 0 {
		page = DefaultPage
	}
	size := atoiDefault(c.Query("size"), DefaultSize)
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return PageParams{Page: page, Size: size}
}

// PagedResponse mengikuti bentuk halaman yang dipakai frontend:
// {content, totalPages, totalElements}
type PagedResponse struct {
	Content       interface{} `json:"content"`
	TotalPages    int         `json:"totalPages"`
	TotalElements int64       `json:"totalElements"`
}

func NewPagedResponse(content interface{}, total int64, size int) PagedResponse {
	totalPages := 0
	if total > 0 && size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}
	return PagedResponse{Content: content, TotalPages: totalPages, TotalElements: total}
}

// EmptyPage dikembalikan list endpoint saat recoverable failure, supaya
// client cukup render empty state tanpa special-case error.
func EmptyPage() PagedResponse {
	return PagedResponse{Content: []interface{}{}, TotalPages: 0, TotalElements: 0}
}

// QueryList mengumpulkan query param multi-value: mendukung key berulang
// (?statuses=A&statuses=B) maupun comma separated (?statuses=A,B).
func QueryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// QueryUintList seperti QueryList tapi untuk ID numerik; nilai non-angka
// dilaporkan lewat ok=false agar handler bisa balas 400.
func QueryUintList(c *fiber.Ctx, key string) ([]uint, bool) {
	var out []uint
	for _, s := range QueryList(c, key) {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, uint(n))
	}
	return out, true
}

func QueryIntList(c *fiber.Ctx, key string) ([]int, bool) {
	var out []int
	for _, s := range QueryList(c, key) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
