package main

import "net/http"

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports service status and whether gateway credentials are configured
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Security		BasicAuth
//	@Router			/v1/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	credentials := "loaded"
	if app.config.razorpay.keyID == "" || app.config.razorpay.keySecret == "" {
		credentials = "missing"
	}

	data := map[string]string{
		"status":              "ok",
		"env":                 app.config.env,
		"version":             version,
		"gateway_credentials": credentials,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
