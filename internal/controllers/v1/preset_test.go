package v1_test

import (
	"net/http"

	"github.com/notekeeper/backend/internal/presets"
	"github.com/notekeeper/backend/test"
)

func (suite *TestSuiteStandard) TestPresetsList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/presets", nil, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var catalog []presets.Category
	test.DecodeResponse(suite.T(), &recorder, &catalog)
	suite.Assert().Equal(presets.Catalog(), catalog)
}

// The catalog is global, it is the same for every user.
func (suite *TestSuiteStandard) TestPresetsIdenticalForAllUsers() {
	first := test.Request(suite.T(), http.MethodGet, "/v1/presets", nil, test.AuthHeader(suite.T(), "user-1"))
	second := test.Request(suite.T(), http.MethodGet, "/v1/presets", nil, test.AuthHeader(suite.T(), "user-2"))

	suite.Assert().JSONEq(first.Body.String(), second.Body.String())
}

func (suite *TestSuiteStandard) TestPresetsUnauthorized() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/presets", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestPresetsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/presets", nil, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}
