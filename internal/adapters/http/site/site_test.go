package site_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"balancewheel/internal/adapters/http/site"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given the site routes are registered", t, func() {
		mux := http.NewServeMux()
		site.Register(context.Background(), mux)

		Convey("When requesting the root page", func() {
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the UI shell is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "Balance Wheel")
			})
		})

		Convey("When requesting the stylesheet", func() {
			req := httptest.NewRequest("GET", "/style.css", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
		})

		Convey("When requesting the script", func() {
			req := httptest.NewRequest("GET", "/app.js", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "/api/history")
		})

		Convey("When requesting a missing asset", func() {
			req := httptest.NewRequest("GET", "/nope.txt", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("And registering with a nil mux panics", func() {
			So(func() { site.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
