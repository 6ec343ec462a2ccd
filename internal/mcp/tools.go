package mcp

import "github.com/mark3labs/mcp-go/mcp"

var localeOption = mcp.WithString("locale",
	mcp.Description("Response language (default en)"),
	mcp.Enum("en", "es", "pt", "fr", "de"),
)

var dailyHoroscopeTool = mcp.NewTool("daily_horoscope",
	mcp.WithDescription("Get the horoscope of a zodiac sign for a day, its ISO week, or its month."),
	mcp.WithString("sign",
		mcp.Required(),
		mcp.Description("Sign id, symbol, or localized name, e.g. leo"),
	),
	mcp.WithString("date",
		mcp.Description("Date as YYYY-MM-DD (default today, UTC)"),
	),
	mcp.WithString("period",
		mcp.Description("Reading period (default daily)"),
		mcp.Enum("daily", "weekly", "monthly"),
	),
	localeOption,
)

var compatibilityTool = mcp.NewTool("compatibility",
	mcp.WithDescription("Score how two zodiac signs get along in love, friendship and work."),
	mcp.WithString("sign_a", mcp.Required(), mcp.Description("First sign")),
	mcp.WithString("sign_b", mcp.Required(), mcp.Description("Second sign")),
	localeOption,
)

var birthChartTool = mcp.NewTool("birth_chart",
	mcp.WithDescription("Compute the Sun, Moon and Rising signs for a birth moment and place."),
	mcp.WithString("date", mcp.Required(), mcp.Description("Birth date as YYYY-MM-DD")),
	mcp.WithString("time", mcp.Required(), mcp.Description("Birth time as HH:MM, 24h")),
	mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude in degrees, -90..90")),
	mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude in degrees, -180..180, east positive")),
	mcp.WithString("timezone", mcp.Description("IANA zone or ±HH:MM offset (default derived from longitude)")),
	localeOption,
)

var biorhythmTool = mcp.NewTool("biorhythm",
	mcp.WithDescription("Compute the physical, emotional and intellectual biorhythm cycles."),
	mcp.WithString("birth", mcp.Required(), mcp.Description("Birth date as YYYY-MM-DD")),
	mcp.WithString("date", mcp.Description("Target date as YYYY-MM-DD (default today, UTC)")),
	mcp.WithNumber("days", mcp.Description("Number of consecutive days to return, 1..90 (default 1)")),
)

var signInfoTool = mcp.NewTool("sign_info",
	mcp.WithDescription("Describe a zodiac sign: dates, element, modality, ruler and traits."),
	mcp.WithString("sign", mcp.Required(), mcp.Description("Sign id, symbol, or localized name")),
	localeOption,
)
