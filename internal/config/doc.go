// Package config provides configuration parsing for vango-ui.
//
// The configuration is stored in vango-ui.json. Every field is optional;
// missing values fall back to defaults, and the API base URLs are derived
// from the selected environment unless set explicitly.
//
// # Configuration File Structure
//
//	{
//	  "environment": "staging",
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000
//	  },
//	  "api": {
//	    "authURL": "https://auth.staging.vango.dev",
//	    "videoURL": "https://video.staging.vango.dev",
//	    "version": "/api/v1"
//	  },
//	  "popover": {
//	    "side": "bottom",
//	    "align": "center",
//	    "trigger": "click",
//	    "hoverCloseDelay": "150ms"
//	  },
//	  "branding": {
//	    "organisationId": "org_123",
//	    "brandColor": "#4f46e5"
//	  }
//	}
//
// The VANGO_UI_ENV environment variable overrides "environment".
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
