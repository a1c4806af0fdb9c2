package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeQualifiers(t *testing.T) {
	tests := []struct {
		name string
		purl string
		want string
	}{
		{
			name: "no qualifiers",
			purl: "pkg:npm/lodash@4.17.21",
			want: "pkg:npm/lodash@4.17.21",
		},
		{
			name: "single qualifier",
			purl: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx",
			want: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx",
		},
		{
			name: "distinct keys untouched",
			purl: "pkg:oci/nginx@1.21.0?repository_url=docker.io/library&arch=amd64",
			want: "pkg:oci/nginx@1.21.0?repository_url=docker.io/library&arch=amd64",
		},
		{
			name: "first occurrence wins",
			purl: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx&rpmmod=nginx2",
			want: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx",
		},
		{
			name: "keys compared case-insensitively",
			purl: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx&RPMMOD=nginx2&arch=x86_64",
			want: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx&arch=x86_64",
		},
		{
			name: "empty value does not claim the key",
			purl: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=&rpmmod=nginx2",
			want: "pkg:rpm/redhat/nginx@1.21.0?rpmmod=&rpmmod=nginx2",
		},
		{
			name: "fragment preserved",
			purl: "pkg:npm/lodash@4.17.21?a=1&a=2#src/lodash.js",
			want: "pkg:npm/lodash@4.17.21?a=1#src/lodash.js",
		},
		{
			name: "question mark inside fragment is not a query",
			purl: "pkg:npm/lodash@4.17.21#src?a=1&a=2",
			want: "pkg:npm/lodash@4.17.21#src?a=1&a=2",
		},
		{
			name: "semicolon pairs kept for the parser to reject",
			purl: "pkg:npm/lodash@4.17.21?a=1&a=2;b=3",
			want: "pkg:npm/lodash@4.17.21?a=1&a=2;b=3",
		},
		{
			name: "bad value escape kept for the parser to reject",
			purl: "pkg:npm/lodash@4.17.21?a=1&a=%zz",
			want: "pkg:npm/lodash@4.17.21?a=1&a=%zz",
		},
		{
			name: "bad key escape kept for the parser to reject",
			purl: "pkg:npm/lodash@4.17.21?a=1&%zz=2",
			want: "pkg:npm/lodash@4.17.21?a=1&%zz=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeQualifiers(tt.purl))
		})
	}
}
