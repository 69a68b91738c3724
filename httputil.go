package club

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// http utils to deal with the remote price service

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure. Time bounds come from the client's Timeout.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
