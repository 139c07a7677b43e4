// Package guide produces the downloadable survival guide for each region.
// Generation is pure: the same region always yields the same document.
package guide

import (
	"encoding/base64"

	"survivalskills/internal/models"
)

// Content returns the guide document for the region. Unknown regions fall
// back to the United States edition.
func Content(region models.Region) string {
	switch region {
	case models.RegionUK:
		return ukGuide
	case models.RegionAU:
		return auGuide
	case models.RegionCA:
		return caGuide
	default:
		return usGuide
	}
}

// EncodeAttachment base64-encodes a document for use as an email attachment.
// TODO: render a real PDF instead of encoding the plain text.
func EncodeAttachment(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

const usGuide = `
Budget Survival Skills Guide - United States

TABLE OF CONTENTS
1. Emergency Fund Building (US)
2. Debt Payoff Strategies
3. US Government Benefits
4. Credit Building in America
5. Investment Basics for Americans
6. Side Hustles in the US
7. Tax Optimization Strategies
8. Healthcare Cost Management
9. Social Security Planning
10. US Banking and Financial Tools

CHAPTER 1: EMERGENCY FUND BUILDING (US)

Your Financial Safety Net in America

An emergency fund is your first line of defense against financial disaster. In the United States, you should aim for 3-6 months of expenses saved in an easily accessible account.

How Much to Save:
- Single person: $10,000-$20,000 typically
- Family of four: $15,000-$30,000 typically
- High earners: 6-12 months of expenses

Best Places to Keep Your Emergency Fund:
1. High-Yield Savings Accounts
   - Marcus by Goldman Sachs: 4.50% APY
   - Ally Bank Online Savings: 4.25% APY
   - American Express Personal Savings: 4.35% APY

2. Money Market Accounts
   - CIT Bank Platinum Savings: 4.55% APY
   - Capital One 360 Performance Savings: 4.30% APY

Emergency Fund Building Strategy:
Week 1: Open high-yield savings account
Week 2: Set up automatic transfer of $100-500/week
Month 3: Reach $1,000 milestone
Month 6: Reach first month of expenses
Month 12: Complete 3-month emergency fund

CHAPTER 2: DEBT PAYOFF STRATEGIES

The Debt Snowball Method:
1. List all debts smallest to largest
2. Pay minimums on all debts
3. Put extra money toward smallest debt
4. Once smallest is paid, roll payment to next smallest

The Debt Avalanche Method:
1. List all debts highest to lowest interest rate
2. Pay minimums on all debts
3. Put extra money toward highest interest debt
4. Mathematically saves more money

Average US Credit Card Interest Rates (2024):
- Average APR: 21.47%
- Good credit: 17-22%
- Excellent credit: 14-20%

CHAPTER 3: US GOVERNMENT BENEFITS

Food Assistance:
- SNAP (Food Stamps): Up to $291/month for individuals
- WIC: Nutritional assistance for women and children
- School meal programs

Healthcare:
- Medicaid: Free healthcare for low-income individuals
- ACA subsidies: Health insurance premium assistance
- Medicare: Healthcare for 65+ and disabled

Housing:
- Section 8 Housing Choice Vouchers
- Public housing assistance
- First-time homebuyer programs

CHAPTER 4: CREDIT BUILDING IN AMERICA

Understanding Credit Scores:
- Excellent: 750-850
- Good: 700-749
- Fair: 650-699
- Poor: 300-649

Factors Affecting Your Score:
- Payment history: 35%
- Credit utilization: 30%
- Length of credit history: 15%
- Types of credit: 10%
- New credit inquiries: 10%

Best Starter Credit Cards:
- Discover it Secured: No annual fee, cash back rewards
- Capital One Secured Mastercard: Graduate to unsecured
- Credit One Bank Unsecured Visa: For rebuilding credit

CHAPTER 5: INVESTMENT BASICS FOR AMERICANS

Tax-Advantaged Accounts:
401(k):
- 2024 contribution limit: $23,000
- Employer match is free money
- Traditional vs Roth options

IRA (Individual Retirement Account):
- 2024 contribution limit: $7,000
- Traditional: Tax deduction now, pay taxes later
- Roth: Pay taxes now, tax-free growth and withdrawals

Investment Options:
- Index funds: Low-cost diversification
- Target-date funds: Automatic asset allocation
- ETFs: Exchange-traded funds with low fees

CHAPTER 6: SIDE HUSTLES IN THE US

Delivery Services:
- DoorDash: $15-25/hour
- Uber Eats: $10-20/hour
- Instacart: $15-25/hour

Online Work:
- Freelance writing: $0.10-$1.00/word
- Virtual assistant: $15-30/hour
- Online tutoring: $15-40/hour

Service-Based:
- TaskRabbit: $15-50/hour
- Rover pet sitting: $25-50/day
- Cleaning services: $25-40/hour

CHAPTER 7: TAX OPTIMIZATION STRATEGIES

2024 Tax Brackets:
- 10%: $0-$11,000
- 12%: $11,001-$44,725
- 22%: $44,726-$95,375
- 24%: $95,376-$182,050

Common Deductions:
- Standard deduction: $14,600 (single), $29,200 (married)
- State and local taxes: Up to $10,000
- Mortgage interest: On loans up to $750,000
- Charitable donations: Various limits apply

CHAPTER 8: HEALTHCARE COST MANAGEMENT

Health Savings Account (HSA):
- 2024 contribution limit: $4,150 (individual), $8,300 (family)
- Triple tax advantage: Deductible, grows tax-free, tax-free withdrawals
- Can be used for retirement after age 65

Insurance Strategies:
- High-deductible health plans with HSA
- Compare plans during open enrollment
- Understand in-network vs out-of-network costs

CHAPTER 9: SOCIAL SECURITY PLANNING

Full Retirement Age:
- Born 1943-1954: Age 66
- Born 1955-1959: Age 66 + 2 months per year
- Born 1960 or later: Age 67

Benefit Calculation:
- Based on highest 35 years of earnings
- Early benefits (age 62): Reduced by 25-30%
- Delayed benefits (age 70): Increased by 24-32%

CHAPTER 10: US BANKING AND FINANCIAL TOOLS

Best Free Checking Accounts:
- Chase Total Checking: Nationwide branches
- Bank of America Advantage Plus: Large ATM network
- Ally Bank Interest Checking: High interest rates

Financial Apps:
- Mint: Free budgeting and expense tracking
- YNAB: You Need A Budget - detailed budgeting
- Personal Capital: Investment tracking and planning

Emergency Contacts:
- Social Security Administration: 1-800-772-1213
- IRS: 1-800-829-1040
- Federal Trade Commission: 1-877-FTC-HELP

This guide provides the foundation for financial success in the United States. Start with building your emergency fund, then tackle debt, build credit, and begin investing for your future.

Remember: Personal finance is personal. Adapt these strategies to your specific situation and always consider consulting with a financial advisor for major decisions.

© 2024 Budget Survival Skills. All rights reserved.
`

const ukGuide = `
Budget Survival Skills Guide - United Kingdom

TABLE OF CONTENTS
1. Emergency Fund Building (UK)
2. Debt Management Strategies
3. UK Government Benefits
4. Credit Building in the UK
5. ISAs and Investment Options
6. Side Hustles in the UK
7. Tax Planning Strategies
8. NHS and Healthcare Costs
9. Pension Planning
10. UK Banking and Financial Services

CHAPTER 1: EMERGENCY FUND BUILDING (UK)

Your Financial Safety Net in Britain

An emergency fund protects you from unexpected expenses and job loss. In the UK, aim for 3-6 months of essential expenses in an easily accessible account.

How Much to Save:
- Single person: £8,000-£15,000 typically
- Family of four: £12,000-£25,000 typically
- Higher earners: 6-12 months of expenses

Best UK Savings Accounts (2024):
1. High-Interest Savings
   - Chase Bank UK: 5.10% AER
   - Virgin Money Double Take E-Saver: 5.05% AER
   - Lloyds Club Lloyds Saver: 5.00% AER

2. Easy Access Savings
   - Santander Edge Up: 4.75% AER
   - NatWest Digital Regular Saver: 5.12% AER

Building Your Emergency Fund:
Week 1: Open high-interest savings account
Week 2: Set up standing order for £100-£400/month
Month 3: Reach £1,000 milestone
Month 6: Achieve one month's expenses
Month 12: Complete 3-month emergency fund

CHAPTER 2: DEBT MANAGEMENT STRATEGIES

UK Debt Statistics:
- Average household debt: £15,400 (excluding mortgages)
- Average credit card debt: £2,600
- Average personal loan: £8,200

Debt Snowball Method:
1. List debts smallest to largest balance
2. Pay minimum on all debts
3. Attack smallest debt with extra payments
4. Roll payments to next smallest debt

Debt Avalanche Method:
1. List debts highest to lowest interest rate
2. Focus extra payments on highest rate debt
3. Saves more money mathematically

UK Credit Card Rates (2024):
- Average APR: 23.7%
- Best rates: 16.9-19.9%
- Store cards: Often 25-30%

CHAPTER 3: UK GOVERNMENT BENEFITS

Universal Credit:
- Replaces six benefits into one payment
- Standard allowance: £393.45/month (over 25)
- Work allowance: £673/month (with children)

Other Key Benefits:
- Personal Independence Payment (PIP)
- Employment and Support Allowance (ESA)
- Housing Benefit/Local Housing Allowance
- Council Tax Reduction

Child Benefits:
- Eldest child: £25.60/week
- Additional children: £16.95/week each
- High Income Child Benefit Charge applies over £60,000

CHAPTER 4: CREDIT BUILDING IN THE UK

UK Credit Score Ranges:
Experian:
- Excellent: 961-999
- Good: 881-960
- Fair: 721-880
- Poor: 0-720

Equifax:
- Excellent: 466-700
- Good: 420-465
- Fair: 380-419
- Poor: 0-379

Building Credit Tips:
- Get on electoral roll
- Pay all bills on time
- Keep credit utilization below 25%
- Don't close old credit accounts
- Check credit reports regularly (free annual reports)

Best UK Credit Builder Cards:
- Aqua Classic: 35.9% APR, builds credit
- Capital One Classic: 34.9% APR
- Vanquis Bank Credit Builder: 39.9% APR

CHAPTER 5: ISAs AND INVESTMENT OPTIONS

Individual Savings Accounts (ISAs):
2024-25 ISA Allowances:
- Cash ISA: £20,000 annual limit
- Stocks & Shares ISA: £20,000 annual limit
- Lifetime ISA: £4,000 annual limit (25% government bonus)
- Junior ISA: £9,000 annual limit

Best Cash ISAs:
- Marcus by Goldman Sachs: 4.70% AER
- Cynergy Bank: 4.65% AER
- Aldermore Bank: 4.61% AER

Investment ISAs:
- Vanguard: Low-cost index funds
- Hargreaves Lansdown: Wide fund selection
- AJ Bell: Competitive fees

CHAPTER 6: SIDE HUSTLES IN THE UK

Delivery Services:
- Deliveroo: £8-15/hour plus tips
- Uber Eats: £7-12/hour
- Just Eat: £8-14/hour

Online Opportunities:
- Freelance writing: £0.05-£0.50/word
- Virtual assistant: £8-20/hour
- Online tutoring: £10-30/hour

Service-Based Work:
- TaskRabbit: £15-40/hour
- Rover pet sitting: £15-30/day
- Cleaning services: £12-18/hour

CHAPTER 7: TAX PLANNING STRATEGIES

UK Tax Bands 2024-25:
- Personal allowance: £12,570 (0%)
- Basic rate: £12,571-£50,270 (20%)
- Higher rate: £50,271-£125,140 (40%)
- Additional rate: Over £125,140 (45%)

Tax-Efficient Investing:
- Use full ISA allowance first
- Consider pension contributions
- Utilize capital gains allowance (£3,000)
- Dividend allowance: £500

CHAPTER 8: NHS AND HEALTHCARE COSTS

NHS Services (Free):
- GP consultations
- Hospital treatment
- Emergency care
- Most mental health services

Healthcare Costs:
- Prescription charges: £9.90 per item (England)
- Dental check-ups: £25.80
- Eye tests: Usually £20-30
- Private health insurance: £50-200/month

CHAPTER 9: PENSION PLANNING

State Pension:
- Full State Pension: £221.20/week (2024-25)
- Requires 35 qualifying years
- Minimum 10 years for any payment

Workplace Pensions:
- Auto-enrollment for eligible workers
- Minimum contributions: 8% total (3% employer, 5% employee)
- Annual allowance: £60,000

Self-Invested Personal Pensions (SIPPs):
- Greater investment control
- Tax relief on contributions
- 25% tax-free lump sum at retirement

CHAPTER 10: UK BANKING AND FINANCIAL SERVICES

Best Current Accounts:
- First Direct 1st Account: £175 switching bonus
- Nationwide FlexDirect: 5% on balances up to £2,500
- Starling Bank: Award-winning app, no fees

Financial Apps:
- Monzo: Budgeting and spending insights
- Emma: Connect all accounts, budgeting
- PensionBee: Pension consolidation and management

Money Guidance Services:
- Citizens Advice: Free debt and money advice
- StepChange: Free debt advice charity
- Money Helper: Government-backed financial guidance

Emergency Contacts:
- HMRC: 0300 200 3300
- DWP: 0800 169 0310
- Financial Ombudsman: 0800 023 4567

This guide provides essential strategies for financial success in the United Kingdom. Focus on building your emergency fund, managing debt, and taking advantage of ISAs and pensions for long-term wealth building.

Remember: Financial situations vary greatly. Always consider seeking advice from a qualified financial adviser for major decisions.

© 2024 Budget Survival Skills. All rights reserved.
`

const auGuide = `
Budget Survival Skills Guide - Australia

TABLE OF CONTENTS
1. Emergency Fund Building (Australia)
2. Debt Management Strategies
3. Australian Government Benefits
4. Credit Building in Australia
5. Superannuation and Investment
6. Side Hustles in Australia
7. Tax Planning Strategies
8. Medicare and Healthcare
9. Property Investment Basics
10. Australian Banking Services

CHAPTER 1: EMERGENCY FUND BUILDING (AUSTRALIA)

Your Financial Safety Net Down Under

An emergency fund is crucial protection against unexpected expenses and job loss. In Australia, aim for 3-6 months of essential expenses in a high-interest savings account.

How Much to Save:
- Single person: $15,000-$25,000 typically
- Family of four: $20,000-$40,000 typically
- Higher earners: 6-12 months of expenses

Best Australian Savings Accounts (2024):
1. High-Interest Savings
   - ING Savings Maximiser: 5.50% p.a.
   - Westpac Life: 5.20% p.a.
   - UP Bank: 5.25% p.a.

2. Term Deposits
   - MyState Bank: 5.35% p.a. (12 months)
   - ME Bank: 5.20% p.a. (6 months)

Building Your Emergency Fund:
Week 1: Open high-interest savings account
Week 2: Set up automatic transfer $150-$600/week
Month 3: Reach $2,000 milestone
Month 6: Complete one month's expenses
Month 12: Achieve 3-month emergency fund

CHAPTER 2: DEBT MANAGEMENT STRATEGIES

Australian Debt Statistics:
- Average household debt: $261,492 (including mortgages)
- Average credit card debt: $4,292
- Average personal loan: $16,847

Debt Avalanche vs Snowball:
Avalanche Method:
- Target highest interest rate debt first
- Mathematically optimal approach
- Saves more money long-term

Snowball Method:
- Pay off smallest balances first
- Builds psychological momentum
- Better for motivation challenges

Australian Credit Card Rates (2024):
- Average purchase rate: 17.85%
- Low-rate cards: 8.99-13.99%
- Rewards cards: 19.99-25.99%

CHAPTER 3: AUSTRALIAN GOVERNMENT BENEFITS

Centrelink Payments (2024):
JobSeeker Payment:
- Single, no children: $749.20 per fortnight
- Single, with children: $802.50 per fortnight

Age Pension:
- Single: $1,020.60 per fortnight
- Couple (each): $769.30 per fortnight

Family Tax Benefit Part A:
- Per child under 13: Up to $197.96 per fortnight
- Per child 13-19: Up to $257.46 per fortnight

Medicare Benefits:
- Free public hospital treatment
- Subsidized medical services
- Pharmaceutical Benefits Scheme (PBS)

CHAPTER 4: CREDIT BUILDING IN AUSTRALIA

Australian Credit Scores:
Equifax (most common):
- Excellent: 833-1200
- Very Good: 726-832
- Good: 622-725
- Average: 510-621
- Below Average: 0-509

Building Credit Tips:
- Pay all bills on time
- Keep credit utilization under 30%
- Don't apply for multiple credit products quickly
- Check credit report annually (free)
- Maintain stable employment and address

Best Credit Building Options:
- Secured credit cards
- Low-rate credit cards with small limits
- Personal loans with regular payments

CHAPTER 5: SUPERANNUATION AND INVESTMENT

Superannuation Basics:
2024 Contribution Limits:
- Concessional contributions: $27,500
- Non-concessional contributions: $110,000
- Government co-contribution: Up to $500

Investment Options:
- Conservative: 20% growth, 80% defensive
- Balanced: 60% growth, 40% defensive
- Growth: 85% growth, 15% defensive

Top Performing Super Funds:
- AustralianSuper: 8.9% p.a. (10-year return)
- Hostplus: 8.7% p.a.
- REST: 8.5% p.a.

CHAPTER 6: SIDE HUSTLES IN AUSTRALIA

Delivery Services:
- Uber Eats: $20-35/hour (peak times)
- DoorDash: $18-30/hour
- Menulog: $15-25/hour

Online Opportunities:
- Content writing: $30-100+ per article
- Virtual assistant: $25-60/hour
- Online tutoring: $20-40/hour

Australian Platforms:
- Airtasker: $20-100+ per task
- Expert360: $100-500+/hour (consulting)
- Freelancer.com: Various project rates

CHAPTER 7: TAX PLANNING STRATEGIES

Australian Tax Rates 2024-25:
- $0-$18,200: 0% (tax-free threshold)
- $18,201-$45,000: 19%
- $45,001-$120,000: 32.5%
- $120,001-$180,000: 37%
- $180,001+: 45%

Tax Deductions:
- Work-related expenses
- Self-education costs
- Home office expenses
- Vehicle expenses (work-related)
- Professional memberships

CHAPTER 8: MEDICARE AND HEALTHCARE

Medicare Coverage:
- Doctor consultations (bulk-billed)
- Hospital treatment (public hospitals)
- Diagnostic tests and scans
- Mental health services

Private Health Insurance:
- Hospital cover: Avoid Medicare Levy Surcharge
- Extras cover: Dental, optical, physio
- Lifetime Health Cover: 2% loading after age 30

Healthcare Costs:
- GP visit: $0-80 (depending on bulk billing)
- Specialist: $200-400 (gap fees common)
- Dental: $150-300 for check-up and clean

CHAPTER 9: PROPERTY INVESTMENT BASICS

Investment Property Benefits:
- Negative gearing: Tax deductions
- Capital growth potential
- Rental income stream
- Forced savings through mortgage payments

Key Considerations:
- 20% deposit typically required
- Stamp duty and legal costs
- Property management fees
- Interest rate fluctuations

Popular Investment Locations:
- Brisbane: Strong growth, affordable entry
- Melbourne: Established market, good yields
- Regional centers: Higher yields, lower prices

CHAPTER 10: AUSTRALIAN BANKING SERVICES

Big Four Banks:
- Commonwealth Bank (CBA)
- Australia and New Zealand Banking (ANZ)
- Westpac Banking Corporation
- National Australia Bank (NAB)

Online Banks:
- ING Australia: High-interest savings
- UP Bank: Excellent mobile app
- 86 400: Competitive rates

Financial Apps:
- Pocketbook: Expense tracking
- Raiz: Micro-investing app
- Spaceship: Investment app for young investors

Government Resources:
- ASIC MoneySmart: Financial education
- Australian Taxation Office (ATO): Tax information
- Centrelink: Government benefits

Emergency Contacts:
- ATO: 13 28 61
- Centrelink: 13 24 68
- Australian Financial Complaints Authority: 1800 931 678

This guide provides the foundation for financial success in Australia. Start with your emergency fund, maximize your superannuation, and take advantage of government benefits and concessions.

Remember: Financial advice should be tailored to your personal situation. Consider consulting with a licensed financial adviser for major decisions.

© 2024 Budget Survival Skills. All rights reserved.
`

const caGuide = `
Budget Survival Skills Guide - Canada

TABLE OF CONTENTS
1. Emergency Fund Building (Canada)
2. Debt Management Strategies
3. Canadian Government Benefits
4. Credit Building in Canada
5. RRSP vs TFSA Strategies
6. Side Hustles in Canada
7. Tax Planning Strategies
8. Healthcare and Benefits
9. Retirement Planning (CPP/OAS)
10. Canadian Banking Services

CHAPTER 1: EMERGENCY FUND BUILDING (CANADA)

Your Financial Safety Net in Canada

An emergency fund provides security against unexpected expenses and job loss. In Canada, aim for 3-6 months of essential expenses in a high-interest savings account.

How Much to Save:
- Single person: $12,000-$20,000 typically
- Family of four: $18,000-$35,000 typically
- Higher earners: 6-12 months of expenses

Best Canadian Savings Accounts (2024):
1. High-Interest Savings
   - EQ Bank Personal Account: 4.00%
   - Tangerine Savings: 3.25%
   - Simplii Financial: 3.00%

2. GICs (Guaranteed Investment Certificates)
   - TD Cashable GIC: 3.50% (1-year)
   - RBC Cashable GIC: 3.40% (1-year)

Building Your Emergency Fund:
Week 1: Open high-interest savings account
Week 2: Set up automatic transfer $100-$500/week
Month 3: Reach $2,000 milestone
Month 6: Complete one month's expenses
Month 12: Achieve 3-month emergency fund

CHAPTER 2: DEBT MANAGEMENT STRATEGIES

Canadian Debt Statistics:
- Average household debt: $73,532 (excluding mortgages)
- Average credit card debt: $4,240
- Average line of credit: $45,218

Debt Snowball Method:
1. List debts smallest to largest
2. Pay minimums on all debts
3. Attack smallest debt with extra payments
4. Build momentum with quick wins

Debt Avalanche Method:
1. Target highest interest rate debt first
2. Mathematically optimal approach
3. Saves more money long-term

Canadian Credit Card Rates (2024):
- Average APR: 19.99-29.99%
- Low-rate cards: 8.99-13.99%
- Store cards: Often 28.99%

CHAPTER 3: CANADIAN GOVERNMENT BENEFITS

Canada Child Benefit (CCB) 2024:
- Children under 6: $7,787 annually ($649/month)
- Children 6-17: $6,570 annually ($548/month)
- Income-tested benefit, phases out with higher income

Employment Insurance (EI):
- Benefit rate: 55% of average earnings
- Maximum weekly benefit: $668
- Requires 420-700 hours of work (depends on region)

Old Age Security (OAS):
- Maximum monthly payment: $713.34
- Available at age 65
- Clawback starts at $90,997 income

Canada Pension Plan (CPP):
- Maximum monthly payment: $1,364.60 (at age 65)
- Based on contributions throughout career
- Can start as early as age 60 (reduced) or delay to 70 (increased)

CHAPTER 4: CREDIT BUILDING IN CANADA

Canadian Credit Score Ranges:
Equifax:
- Excellent: 760-900
- Very Good: 725-759
- Good: 660-724
- Fair: 560-659
- Poor: 300-559

TransUnion:
- Excellent: 781-850
- Good: 661-780
- Fair: 601-660
- Poor: 300-600

Building Credit Tips:
- Pay all bills on time
- Keep credit utilization under 30%
- Maintain older credit accounts
- Don't apply for multiple credit products quickly
- Check credit reports annually (free)

Best Credit Building Cards:
- Secured credit cards for beginners
- Student credit cards for young adults
- Low-rate cards for building payment history

CHAPTER 5: RRSP VS TFSA STRATEGIES

2024 Contribution Limits:
RRSP:
- Maximum: $31,560 or 18% of 2023 earned income
- Tax deductible contributions
- Taxable withdrawals in retirement

TFSA:
- Annual room: $7,000
- Cumulative room (2009-2024): $95,000
- Tax-free growth and withdrawals

Strategy by Income Level:
High Income ($80,000+):
- Prioritize RRSP for tax savings
- Use tax refund for TFSA contributions

Moderate Income ($45,000-$80,000):
- Split between RRSP and TFSA
- Consider future tax bracket expectations

Lower Income (Under $45,000):
- Prioritize TFSA contributions
- Better flexibility and no future tax burden

CHAPTER 6: SIDE HUSTLES IN CANADA

Delivery Services:
- Uber Eats: $18-30/hour (peak times)
- DoorDash: $16-28/hour
- Skip The Dishes: $15-25/hour

Online Opportunities:
- Content writing: $0.10-$1.00/word
- Virtual assistant: $20-50/hour
- Online tutoring: $18-35/hour

Canadian Platforms:
- TaskRabbit: $20-60/hour (Toronto, Vancouver, Montreal)
- Rover: $15-40/service (pet care)
- Handy: $25-50/hour (home services)

CHAPTER 7: TAX PLANNING STRATEGIES

Federal Tax Brackets 2024:
- $0-$55,867: 15%
- $55,868-$111,733: 20.5%
- $111,734-$173,205: 26%
- $173,206-$246,752: 29%
- $246,753+: 33%

Combined Federal/Provincial Rates (Examples):
Ontario:
- $0-$51,446: 20.05%
- $51,447-$55,867: 24.15%
- $55,868-$102,894: 31.48%

Alberta:
- $0-$55,867: 25%
- $55,868-$111,733: 30.5%

Tax Deductions and Credits:
- RRSP contributions
- Charitable donations
- Medical expenses
- Home office expenses (if employed)

CHAPTER 8: HEALTHCARE AND BENEFITS

Provincial Healthcare:
- Hospital and physician services covered
- Prescription drug coverage varies by province
- Dental and vision typically not covered

Private Benefits:
- Extended health coverage through employers
- Private health insurance available
- Health Spending Accounts (HSAs)

Healthcare Costs:
- Prescription drugs: $50-500/month (without coverage)
- Dental cleaning: $150-300
- Eye exam: $80-150

CHAPTER 9: RETIREMENT PLANNING (CPP/OAS)

Canada Pension Plan (CPP):
- Based on 39 years of contributions
- Can start at age 60 (36% reduction) to 70 (42% increase)
- Average payment: $816.52/month

Old Age Security (OAS):
- Universal benefit at age 65
- Full benefit requires 40 years Canadian residence
- Can defer to age 70 for 36% increase

Guaranteed Income Supplement (GIS):
- Income-tested benefit for low-income seniors
- Maximum: $1,065.47/month (single)
- Automatic application based on tax return

CHAPTER 10: CANADIAN BANKING SERVICES

Big Six Banks:
- Royal Bank of Canada (RBC)
- Toronto-Dominion Bank (TD)
- Bank of Nova Scotia (Scotiabank)
- Bank of Montreal (BMO)
- Canadian Imperial Bank of Commerce (CIBC)
- National Bank of Canada

Online Banks:
- Tangerine: No-fee banking, high-interest savings
- Simplii Financial: CIBC's digital bank
- Koodo Financial: High-interest savings

Credit Unions:
- Meridian Credit Union (Ontario)
- Coast Capital Savings (BC)
- Desjardins (Quebec)

Financial Apps:
- Mint: Budgeting and expense tracking
- YNAB: You Need A Budget
- Personal Capital: Investment tracking

Government Resources:
- Canada Revenue Agency (CRA): Tax information
- Service Canada: Government benefits
- Financial Consumer Agency of Canada: Financial education

Emergency Contacts:
- CRA: 1-800-267-6999
- Service Canada: 1-800-622-6232
- Equifax Canada: 1-800-465-7166

This guide provides essential strategies for financial success in Canada. Focus on building your emergency fund, maximizing tax-advantaged accounts, and planning for retirement with CPP and OAS.

Remember: Personal financial situations vary greatly. Consider consulting with a fee-for-service financial planner for personalized advice.

© 2024 Budget Survival Skills. All rights reserved.
`
