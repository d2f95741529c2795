// Package model defines the data structures used throughout the Daybook application.
package model

type Config struct {
	DataDir         string `json:"data_dir"`
	DatabaseFile    string `json:"database_file"`
	LogFolder       string `json:"log_folder"`
	LogFile         string `json:"log_file"`
	HistoryFile     string `json:"history_file"`
	ExportDir       string `json:"export_dir"`
	TokenTTLMinutes int    `json:"token_ttl_minutes"`
}
