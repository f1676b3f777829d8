package storage

import (
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

func TestS3Store_URL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
		want string
	}{
		{
			name: "public url wins",
			cfg:  config.S3Config{Bucket: "fotos", Region: "sa-east-1", PublicURL: "https://cdn.clinica.com.br/"},
			want: "https://cdn.clinica.com.br/medicos/1/foto-a.webp",
		},
		{
			name: "custom endpoint is path style",
			cfg:  config.S3Config{Bucket: "fotos", Region: "us-east-1", Endpoint: "http://localhost:9000"},
			want: "http://localhost:9000/fotos/medicos/1/foto-a.webp",
		},
		{
			name: "aws virtual host",
			cfg:  config.S3Config{Bucket: "fotos", Region: "sa-east-1"},
			want: "https://fotos.s3.sa-east-1.amazonaws.com/medicos/1/foto-a.webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewS3Store(tt.cfg)
			if got := s.URL(PhysicianPhotoKey(1, "a")); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
