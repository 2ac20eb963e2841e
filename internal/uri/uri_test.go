package uri

import "testing"

func TestFileURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "simple path",
			path: "/home/test/files.txt",
			want: "file:///home/test/files.txt",
		},
		{
			name: "path with spaces",
			path: "/home/test/my dir/files list.txt",
			want: "file:///home/test/my%20dir/files%20list.txt",
		},
		{
			name: "relative-looking path gets leading slash",
			path: "C:/Users/test/files.txt",
			want: "file:///C:/Users/test/files.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileURI(tt.path)
			if got != tt.want {
				t.Errorf("FileURI() = %q, want %q", got, tt.want)
			}
		})
	}
}
