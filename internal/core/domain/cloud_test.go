package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudProvider_IsValid(t *testing.T) {
	tests := []struct {
		provider CloudProvider
		valid    bool
	}{
		{CloudProviderAWS, true},
		{CloudProviderGCP, true},
		{CloudProviderAzure, true},
		{"", false},
		{"dropbox", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.provider.IsValid())
		})
	}
}

func TestCloudProvider_Scheme(t *testing.T) {
	assert.Equal(t, "s3", CloudProviderAWS.Scheme())
	assert.Equal(t, "gs", CloudProviderGCP.Scheme())
	assert.Equal(t, "azure", CloudProviderAzure.Scheme())
}

func TestCloudConfig_IsConfigured(t *testing.T) {
	var nilCfg *CloudConfig
	assert.False(t, nilCfg.IsConfigured())
	assert.False(t, (&CloudConfig{}).IsConfigured())
	assert.True(t, (&CloudConfig{Provider: CloudProviderAWS}).IsConfigured())
}

func TestCloudConfig_BucketName(t *testing.T) {
	aws := CloudConfig{Provider: CloudProviderAWS, Bucket: "b", Container: "c"}
	azure := CloudConfig{Provider: CloudProviderAzure, Bucket: "b", Container: "c"}

	assert.Equal(t, "b", aws.BucketName())
	assert.Equal(t, "c", azure.BucketName())
}

func TestCloudConfig_KeyFor(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		what   string
		rel    []string
		want   string
	}{
		{"prefix and kind", "exp1", "data", nil, "exp1/data"},
		{"no prefix", "", "model", []string{"model.gob"}, "model/model.gob"},
		{"slashes trimmed", "/exp1/", "data", []string{"pos/a.txt"}, "exp1/data/pos/a.txt"},
		{"empty rel dropped", "p", "data", []string{""}, "p/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := CloudConfig{Prefix: tt.prefix}
			assert.Equal(t, tt.want, cfg.KeyFor(tt.what, tt.rel...))
		})
	}
}
