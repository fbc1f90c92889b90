package handler

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Home serves a small HTML index of the available endpoints so that a
// browser pointed at the service root shows something useful.
func Home(c echo.Context) error {
    const page = `<h1>Hostel Management System API</h1>
<h2>Available Endpoints:</h2>
<ul>
    <li><code>POST /api/login</code> - Login</li>
    <li><code>GET /api/rooms</code> - Get all rooms</li>
    <li><code>POST /api/rooms</code> - Create new room</li>
    <li><code>GET /api/members</code> - Get all members</li>
    <li><code>POST /api/members</code> - Add new member</li>
    <li><code>GET /api/payments</code> - Get all payments</li>
    <li><code>POST /api/payments</code> - Create new payment</li>
    <li><code>GET /api/reports/occupancy</code> - Get occupancy report</li>
    <li><code>GET /api/reports/payments</code> - Get payments report</li>
</ul>`
    return c.HTML(http.StatusOK, page)
}
