package model

import "github.com/deppfellow/generic-tools/internal/validation"

// VideoSearchRequest looks up the first video matching Title.
type VideoSearchRequest struct {
	Title string `query:"title" validate:"required,notblank"`
}

func (r *VideoSearchRequest) Validate() error {
	trim(&r.Title)
	return validation.Struct(r)
}

// TitleRequest downloads the first video matching Title.
type TitleRequest struct {
	Title string `json:"title" validate:"required,notblank"`
}

func (r *TitleRequest) Validate() error {
	trim(&r.Title)
	return validation.Struct(r)
}

// URLRequest downloads the video behind a YouTube URL.
type URLRequest struct {
	URL string `json:"url" validate:"required,notblank"`
}

func (r *URLRequest) Validate() error {
	trim(&r.URL)
	return validation.Struct(r)
}

// BatchMusicRequest downloads the audio of the first match of each title.
type BatchMusicRequest struct {
	Titles []string `json:"titles" validate:"required,min=1,dive,notblank"`
}

func (r *BatchMusicRequest) Validate() error {
	return validation.Struct(r)
}

// DownloadResponse describes one stored file.
type DownloadResponse struct {
	Message string `json:"message"`
	File    string `json:"file"`
	Title   string `json:"title"`
	Link    string `json:"link"`
}

// BatchDownloadResponse lists the files stored by a batch download.
type BatchDownloadResponse struct {
	Message string   `json:"message"`
	Files   []string `json:"files"`
}
