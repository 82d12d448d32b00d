package controllers

import (
	"io"
	"net/http"
)

// Ping is the liveness check used to keep the host awake
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Server is awake!"})
}

// Home answers the bare root path
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "elara-int server is running")
}
