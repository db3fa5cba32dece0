// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"context"
	"net/http"
)

// HRAPI 人事接口
type HRAPI struct {
	c *Client
}

type HRDepartment struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Code           string         `json:"code"`
	ConfigID       string         `json:"config_id"`
	Status         int            `json:"status"`
	StatusLabel    string         `json:"statusLabel"`
	Description    string         `json:"description"`
	Metadata       map[string]any `json:"metadata"`
	Parent         *string        `json:"parent"`
	ParentName     *string        `json:"parentName"`
	Manager        *string        `json:"manager"`
	ManagerName    *string        `json:"managerName"`
	DingDepartment *int64         `json:"ding_department"`
	DingDeptID     *string        `json:"dingDeptId"`
	CreateTime     string         `json:"create_time"`
	UpdateTime     string         `json:"update_time"`
}

type HREmployee struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	JobNumber             string         `json:"job_number"`
	ConfigID              string         `json:"config_id"`
	Email                 string         `json:"email"`
	Phone                 string         `json:"phone"`
	Title                 string         `json:"title"`
	EmploymentType        int            `json:"employment_type"`
	EmploymentTypeLabel   string         `json:"employmentTypeLabel"`
	EmploymentStatus      int            `json:"employment_status"`
	EmploymentStatusLabel string         `json:"employmentStatusLabel"`
	HireDate              *string        `json:"hire_date"`
	RegularDate           *string        `json:"regular_date"`
	SeparationDate        *string        `json:"separation_date"`
	BaseSalary            Decimal        `json:"base_salary"`
	Allowance             Decimal        `json:"allowance"`
	Metadata              map[string]any `json:"metadata"`
	Department            *string        `json:"department"`
	DepartmentName        *string        `json:"departmentName"`
	User                  *string        `json:"user"`
	DingUser              *string        `json:"ding_user"`
	DingUserID            *string        `json:"dingUserId"`
	CreateTime            string         `json:"create_time"`
	UpdateTime            string         `json:"update_time"`
}

type AttendanceRule struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	WorkdayStart         string `json:"workday_start"`
	WorkdayEnd           string `json:"workday_end"`
	AllowLateMinutes     int    `json:"allow_late_minutes"`
	AllowEarlyMinutes    int    `json:"allow_early_minutes"`
	AbsenceMinutes       int    `json:"absence_minutes"`
	OvertimeStartMinutes int    `json:"overtime_start_minutes"`
	WeekendAsWorkday     bool   `json:"weekend_as_workday"`
	CustomWorkdays       []int  `json:"custom_workdays"`
	CreateTime           string `json:"create_time"`
	UpdateTime           string `json:"update_time"`
}

type PayrollRecord struct {
	ID                string         `json:"id"`
	Employee          string         `json:"employee"`
	EmployeeName      string         `json:"employeeName"`
	EmployeeJobNumber string         `json:"employeeJobNumber"`
	Rule              string         `json:"rule"`
	RuleName          string         `json:"ruleName"`
	AttendanceSummary *string        `json:"attendance_summary"`
	PeriodStart       string         `json:"period_start"`
	PeriodEnd         string         `json:"period_end"`
	GrossSalary       Decimal        `json:"gross_salary"`
	Deductions        Decimal        `json:"deductions"`
	Tax               Decimal        `json:"tax"`
	NetSalary         Decimal        `json:"net_salary"`
	Detail            map[string]any `json:"detail"`
	Remark            string         `json:"remark"`
	Status            int            `json:"status"`
	StatusLabel       string         `json:"statusLabel"`
	PaidAt            *string        `json:"paid_at"`
	CreateTime        string         `json:"create_time"`
	UpdateTime        string         `json:"update_time"`
}

func (a *HRAPI) ListDepartments(ctx context.Context, token string, query Query) (*Result[[]HRDepartment], error) {
	return call[[]HRDepartment](ctx, a.c, token, http.MethodGet, "/api/hr/departments/", query, nil)
}

func (a *HRAPI) ListEmployees(ctx context.Context, token string, query Query) (*Result[[]HREmployee], error) {
	return call[[]HREmployee](ctx, a.c, token, http.MethodGet, "/api/hr/employees/", query, nil)
}

func (a *HRAPI) ListAttendanceRules(ctx context.Context, token string, query Query) (*Result[[]AttendanceRule], error) {
	return call[[]AttendanceRule](ctx, a.c, token, http.MethodGet, "/api/hr/attendance/rules/", query, nil)
}

func (a *HRAPI) ListPayrollRecords(ctx context.Context, token string, query Query) (*Result[[]PayrollRecord], error) {
	return call[[]PayrollRecord](ctx, a.c, token, http.MethodGet, "/api/hr/payroll/records/", query, nil)
}
