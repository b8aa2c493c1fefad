package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/musictheory/cmd"
	"github.com/jsphweid/musictheory/config"
	"github.com/jsphweid/musictheory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var router = cmd.NewRouter(config.DefaultConfig(), nil)

func do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func get(t *testing.T, path string, v any) *http.Response {
	resp, body := do(t, httptest.NewRequest(http.MethodGet, path, nil))
	if v != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(body, v), string(body))
	}
	return resp
}

func createAnalyzeReqBody(notes model.Notes, keyName string) io.Reader {
	data, err := json.Marshal(model.AnalyzeRequestBody{Notes: notes, Key: keyName})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func analyze(t *testing.T, body io.Reader) (*http.Response, model.Analysis) {
	resp, respBody := do(t, httptest.NewRequest(http.MethodPost, "/analyze", body))
	var res model.Analysis
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(respBody, &res))
	}
	return resp, res
}

func TestAnalyzeCMajorE2E(t *testing.T) {
	resp, res := analyze(t, createAnalyzeReqBody([]uint8{60, 64, 67}, "C major"))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("application/json", resp.Header.Get("Content-Type"))
	assert.Equal([]int{60, 64, 67}, res.Notes)
	assert.Equal("0x091", res.Set)
	assert.Equal("3-11", res.ForteNumber)
	assert.Equal("Major", res.Chord)
	assert.Equal("I", res.Roman)
	assert.Equal([]string{"C", "E", "G"}, res.Spelled)
}

func TestAnalyzeNoteArrayBodyE2E(t *testing.T) {
	resp, res := analyze(t, strings.NewReader(`{"notes":[60,64,67],"key":"C major"}`))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal([]int{60, 64, 67}, res.Notes)
	assert.Equal("0x091", res.Set)
	assert.Equal("I", res.Roman)
}

func TestAnalyzeChromaticRootE2E(t *testing.T) {
	resp, res := analyze(t, strings.NewReader(`{"notes":[61,65,68],"key":"A minor"}`))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("C#", res.Symbol)
	assert.Equal("#III", res.Roman)
}

func TestAnalyzeFChordE2E(t *testing.T) {
	resp, res := analyze(t, createAnalyzeReqBody([]uint8{60, 65, 69}, "C major"))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("F", res.Symbol)
	assert.Equal("IV", res.Roman)
}

func TestAnalyzeWithoutKeyE2E(t *testing.T) {
	resp, res := analyze(t, createAnalyzeReqBody([]uint8{57, 60, 64}, ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Minor", res.Chord)
	assert.Empty(t, res.Roman)
}

func TestAnalyzeRejectsBadInputE2E(t *testing.T) {
	for _, body := range []string{
		`{"notes":[]}`,
		`{"notes":[60],"key":"H major"}`,
		`{"notes":[300]}`,
		`not json`,
	} {
		resp, respBody := do(t, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)

		var errResp model.ErrorResponse
		require.NoError(t, json.Unmarshal(respBody, &errResp))
		assert.NotEmpty(t, errResp.Error)
	}
}

func TestPcsE2E(t *testing.T) {
	var res struct {
		Set          string `json:"set"`
		PitchClasses []int  `json:"pitch_classes"`
		Cardinality  int    `json:"cardinality"`
	}
	resp := get(t, "/pcs/0x091?transpose=2", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0x244", res.Set)
	assert.Equal(t, []int{2, 6, 9}, res.PitchClasses)

	resp = get(t, "/pcs/0,4,7?invert=true", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{0, 5, 8}, res.PitchClasses)

	resp = get(t, "/pcs/0x1000", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClassifyE2E(t *testing.T) {
	var res model.SetClass
	resp := get(t, "/classify/0,4,7", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3-11", res.ForteNumber)
	assert.Equal(t, "0x091", res.PrimeForm)
	assert.Equal(t, "0x089", res.FortePrime)
	assert.True(t, res.ClusterFree)
}

func TestCatalogE2E(t *testing.T) {
	assert := assert.New(t)
	var res model.CollectionResponse

	assert.Equal(http.StatusOK, get(t, "/scale/diatonic/0", &res).StatusCode)
	assert.Equal("0xAB5", res.Set)

	assert.Equal(http.StatusOK, get(t, "/mode/dorian/C", &res).StatusCode)
	assert.Equal([]int{0, 2, 3, 5, 7, 9, 10}, res.PitchClasses)

	assert.Equal(http.StatusOK, get(t, "/chord/minor/0", &res).StatusCode)
	assert.Equal([]string{"C", "Eb", "G"}, res.Spelled)

	assert.Equal(http.StatusBadRequest, get(t, "/scale/bebop/0", nil).StatusCode)
	assert.Equal(http.StatusBadRequest, get(t, "/chord/major/H", nil).StatusCode)
}

func TestSpellAndRomanE2E(t *testing.T) {
	assert := assert.New(t)

	var spelled model.SpellResponse
	get(t, "/spell/1", &spelled)
	assert.Equal("C#", spelled.Name)
	get(t, "/spell/1?key=Ab%20major", &spelled)
	assert.Equal("Db", spelled.Name)
	assert.Equal("Ab major", spelled.Key)

	var roman model.RomanResponse
	get(t, "/roman/0x091", &roman)
	assert.Equal("I", roman.Roman)
	get(t, "/roman/0,4,7?key=G%20major", &roman)
	assert.Equal("IV", roman.Roman)
	assert.Equal("C", roman.Symbol)
}

func TestFretE2E(t *testing.T) {
	var res model.FretResponse
	resp := get(t, "/fret/60", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, res.Positions, 5)
	assert.Equal(t, model.FretPosition{String: 4, Fret: 1}, res.Positions[4])

	assert.Equal(t, http.StatusBadRequest, get(t, "/fret/200", nil).StatusCode)
}

func TestSvgE2E(t *testing.T) {
	for _, path := range []string{"/svg/clock/0x091", "/svg/fret/x32010", "/svg/staff/major/0"} {
		resp, body := do(t, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"), path)
		assert.True(t, strings.HasPrefix(string(body), "<svg"), path)
	}
}

func TestRequestIdE2E(t *testing.T) {
	resp, _ := do(t, httptest.NewRequest(http.MethodGet, "/spell/0", nil))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/spell/0", nil)
	req.Header.Set("X-Request-Id", "abc")
	resp, _ = do(t, req)
	assert.Equal(t, "abc", resp.Header.Get("X-Request-Id"))
}

func TestCorsE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/spell/0", nil)
	req.Header.Set("Origin", "http://example.com")
	resp, _ := do(t, req)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	c := config.DefaultConfig()
	c.Server.AllowedOrigins = []string{"http://allowed.test"}
	restricted := cmd.NewRouter(c, nil)

	req = httptest.NewRequest(http.MethodGet, "/spell/0", nil)
	req.Header.Set("Origin", "http://other.test")
	w := httptest.NewRecorder()
	restricted.ServeHTTP(w, req)
	assert.Empty(t, w.Result().Header.Get("Access-Control-Allow-Origin"))
}
