package handlers

import (
	"github.com/rogerio-castellano/ink-to-doc/internal/ocr"
	"github.com/rogerio-castellano/ink-to-doc/internal/redissvc"
	"github.com/rogerio-castellano/ink-to-doc/internal/repo"
)

var (
	userRepo  repo.UserRepository
	ocrClient *ocr.Client
	textCache redissvc.TextCache
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetOCRClient(c *ocr.Client) {
	ocrClient = c
}

func SetTextCache(c redissvc.TextCache) {
	textCache = c
}
