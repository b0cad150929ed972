package internal

const AppVersion = "1.2.1"
